package model

import (
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/model/ingredient"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		&user.Subscription{},
		// 食材模型
		&ingredient.Ingredient{},
		// 菜谱相关模型
		&recipe.Recipe{},
		&recipe.RecipeIngredient{},
		&recipe.Favorite{},
		&recipe.ShoppingCart{},
	)
	if err != nil {
		return err
	}
	return nil
}
