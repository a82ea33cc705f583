package ingredient

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
)

// SetupIngredientRoutes 设置食材相关路由
func SetupIngredientRoutes(r *gin.RouterGroup, db *gorm.DB) {
	ingredientHandler := NewIngredientHandler(db)

	// 公开路由
	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.ListIngredients)   // 食材列表
		ingredients.GET("/:id", ingredientHandler.GetIngredient) // 食材详情
	}

	// 管理员路由
	ingredientsAdmin := r.Group("/ingredients")
	ingredientsAdmin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		ingredientsAdmin.POST("/import", ingredientHandler.ImportIngredients) // 批量导入
	}
}
