// Package recipe 菜谱相关模型
package recipe

import "time"

// Recipe 菜谱基础信息表
type Recipe struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Name     string `gorm:"type:varchar(256);not null" json:"name"`
	// 图片存储路径（相对 media 根目录）
	Image string `gorm:"type:varchar(500)" json:"image"`
	// 做法描述
	Text string `gorm:"type:text;not null" json:"text"`
	// 烹饪时间（分钟），至少 1
	CookingTime int       `gorm:"not null" json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecipeIngredient 菜谱-食材关联表
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint `gorm:"primaryKey;index" json:"ingredient_id"`
	// 食材用量，至少 1
	Amount int `gorm:"not null" json:"amount"`
}
