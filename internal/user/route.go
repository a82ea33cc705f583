package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
)

// SetupUserRoutes 设置用户相关路由
func SetupUserRoutes(r *gin.RouterGroup, db *gorm.DB) {
	userHandler := NewUserHandler(db)

	// 公开路由 - 可选认证（用于计算 is_subscribed）
	usersPublic := r.Group("/users")
	usersPublic.Use(middleware.OptionalJWTAuth())
	{
		usersPublic.POST("", userHandler.Register)   // 注册
		usersPublic.GET("", userHandler.ListUsers)   // 用户列表
		usersPublic.GET("/:id", userHandler.GetUser) // 用户信息
	}

	// 需要认证的路由
	usersAuth := r.Group("/users")
	usersAuth.Use(middleware.JWTAuth())
	{
		usersAuth.GET("/me", userHandler.Me)                           // 当前用户信息
		usersAuth.POST("/set_password", userHandler.SetPassword)       // 修改密码
		usersAuth.PUT("/me/avatar", userHandler.SetAvatar)             // 设置头像
		usersAuth.DELETE("/me/avatar", userHandler.DeleteAvatar)       // 删除头像
		usersAuth.GET("/subscriptions", userHandler.ListSubscriptions) // 订阅列表
		usersAuth.POST("/:id/subscribe", userHandler.Subscribe)        // 订阅作者
		usersAuth.DELETE("/:id/subscribe", userHandler.Unsubscribe)    // 取消订阅
	}
}
