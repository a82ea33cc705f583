package dto

// IngredientAmountRequest 创建菜谱时指定的食材及用量
type IngredientAmountRequest struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required,min=1"`
}

// CreateRecipeRequest 创建菜谱请求
type CreateRecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Name        string                    `json:"name" binding:"required,max=256"`
	// Base64 data URL 编码的图片
	Image       string `json:"image" binding:"required"`
	Text        string `json:"text" binding:"required"`
	CookingTime int    `json:"cooking_time" binding:"required,min=1"`
}

// UpdateRecipeRequest 更新菜谱请求
// 图片可以省略，省略时保留原图
type UpdateRecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Name        string                    `json:"name" binding:"required,max=256"`
	Image       string                    `json:"image"`
	Text        string                    `json:"text" binding:"required"`
	CookingTime int                       `json:"cooking_time" binding:"required,min=1"`
}

// IngredientInRecipe 菜谱详情中的食材行
type IngredientInRecipe struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse 菜谱详情响应
type RecipeResponse struct {
	ID               uint                 `json:"id"`
	Author           UserProfile          `json:"author"`
	Ingredients      []IngredientInRecipe `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	// 图片 URL
	Image       string `json:"image"`
	Text        string `json:"text"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeMinified 菜谱简要信息（收藏、购物车、订阅列表使用）
type RecipeMinified struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// ShortLinkResponse 短链接响应
type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}
