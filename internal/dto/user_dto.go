package dto

// RegisterRequest 用户注册请求
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,max=128"`
}

// SetPasswordRequest 修改密码请求
type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required,max=128"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

// AvatarRequest 设置头像请求（Base64 data URL）
type AvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UserProfile 用户信息响应
type UserProfile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// 当前请求用户是否已订阅该作者
	IsSubscribed bool `json:"is_subscribed"`
	// 头像 URL，未设置时为 null
	Avatar *string `json:"avatar"`
}

// SubscriptionItem 订阅列表项：作者信息加上其菜谱
type SubscriptionItem struct {
	UserProfile
	Recipes      []RecipeMinified `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}
