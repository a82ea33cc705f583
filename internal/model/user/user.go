// Package user 用户相关模型
package user

import "time"

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户模型
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Username string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	// 名
	FirstName string `gorm:"type:varchar(150);not null" json:"first_name"`
	// 姓
	LastName     string `gorm:"type:varchar(150);not null" json:"last_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	// 头像存储路径（相对 media 根目录），为空表示未设置
	Avatar string `gorm:"type:varchar(500)" json:"avatar"`
	// 角色: user(普通用户), admin(管理员，可导入食材)
	Role      string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription 订阅关系表（user 关注 author）
type Subscription struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	AuthorID  uint      `gorm:"primaryKey;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
