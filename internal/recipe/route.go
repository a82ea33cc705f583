package recipe

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
)

// SetupRecipeRoutes 设置菜谱相关路由
func SetupRecipeRoutes(r *gin.RouterGroup, db *gorm.DB) {
	recipeHandler := NewRecipeHandler(db)

	// 公开路由 - 可选认证（用于计算 is_favorited / is_in_shopping_cart）
	recipesPublic := r.Group("/recipes")
	recipesPublic.Use(middleware.OptionalJWTAuth())
	{
		recipesPublic.GET("", recipeHandler.ListRecipes)               // 菜谱列表
		recipesPublic.GET("/:id", recipeHandler.GetRecipe)             // 菜谱详情
		recipesPublic.GET("/:id/get-link", recipeHandler.GetShortLink) // 短链接
	}

	// 需要认证的路由
	recipesAuth := r.Group("/recipes")
	recipesAuth.Use(middleware.JWTAuth())
	{
		recipesAuth.POST("", recipeHandler.CreateRecipe)                               // 创建菜谱
		recipesAuth.PATCH("/:id", recipeHandler.UpdateRecipe)                          // 更新菜谱
		recipesAuth.DELETE("/:id", recipeHandler.DeleteRecipe)                         // 删除菜谱
		recipesAuth.POST("/:id/favorite", recipeHandler.Favorite)                      // 收藏
		recipesAuth.DELETE("/:id/favorite", recipeHandler.Unfavorite)                  // 取消收藏
		recipesAuth.POST("/:id/shopping_cart", recipeHandler.AddToCart)                // 加入购物车
		recipesAuth.DELETE("/:id/shopping_cart", recipeHandler.RemoveFromCart)         // 移出购物车
		recipesAuth.GET("/download_shopping_cart", recipeHandler.DownloadShoppingCart) // 下载购物清单
	}
}
