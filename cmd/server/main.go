package main

import (
	"fmt"
	"log"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/database"
	"github.com/SidorenkoTatiana/foodgram-st/internal/route"
)

// @title Foodgram API
// @version 1.0
// @description 菜谱分享平台后端：发布菜谱、收藏、订阅作者、生成购物清单
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()
	r := route.SetupRouter()

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
