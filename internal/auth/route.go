package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(r *gin.RouterGroup, db *gorm.DB) {
	authHandler := NewAuthHandler(db)

	tokens := r.Group("/auth/token")
	{
		tokens.POST("/login", authHandler.Login) // 登录
	}

	tokensAuth := r.Group("/auth/token")
	tokensAuth.Use(middleware.JWTAuth())
	{
		tokensAuth.POST("/logout", authHandler.Logout) // 注销
	}
}
