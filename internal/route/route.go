package route

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/auth"
	"github.com/SidorenkoTatiana/foodgram-st/internal/database"
	"github.com/SidorenkoTatiana/foodgram-st/internal/ingredient"
	"github.com/SidorenkoTatiana/foodgram-st/internal/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/user"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/api/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// API 路由组
	api := r.Group("/api")
	{
		auth.SetupAuthRoutes(api, db)
		user.SetupUserRoutes(api, db)
		recipe.SetupRecipeRoutes(api, db)
		ingredient.SetupIngredientRoutes(api, db)
	}

	// 短链接重定向到前端菜谱页
	r.GET("/s/recipes/:id", func(c *gin.Context) {
		target := fmt.Sprintf("%s/recipes/%s", config.Conf.Server.FrontendURL, c.Param("id"))
		c.Redirect(http.StatusFound, target)
	})

	// 上传的图片文件
	r.Static(config.Conf.Media.URLPrefix, config.Conf.Media.Root)
}

func SetupRouter() *gin.Engine {
	gin.SetMode(config.Conf.Server.Mode)
	r := gin.Default()

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Conf.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
