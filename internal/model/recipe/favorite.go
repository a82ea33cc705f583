package recipe

import "time"

// Favorite 收藏表
type Favorite struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	RecipeID  uint      `gorm:"primaryKey;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingCart 购物车表（加入购物清单的菜谱）
type ShoppingCart struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	RecipeID  uint      `gorm:"primaryKey;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}
