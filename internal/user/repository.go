package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/model/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/user"
)

// UserRepository 用户仓储层
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ===== User 基础操作 =====

func (r *UserRepository) GetByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

// FindByUsernameOrEmail 用于注册时的唯一性检查
func (r *UserRepository) FindByUsernameOrEmail(username, email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&u).Error
	return &u, err
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Update(u *user.User) error {
	return r.db.Save(u).Error
}

// List 按用户名排序分页获取用户
func (r *UserRepository) List(offset, limit int) ([]user.User, int64, error) {
	var users []user.User
	var total int64

	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("username").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// ===== 订阅相关操作 =====

// IsSubscribed 检查 userID 是否已订阅 authorID
func (r *UserRepository) IsSubscribed(userID, authorID uint) bool {
	if userID == 0 {
		return false
	}
	var sub user.Subscription
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&sub).Error
	return err == nil
}

func (r *UserRepository) CreateSubscription(userID, authorID uint) error {
	sub := &user.Subscription{
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(sub).Error
}

// DeleteSubscription 删除订阅，返回删除的行数
func (r *UserRepository) DeleteSubscription(userID, authorID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&user.Subscription{})
	return result.RowsAffected, result.Error
}

// ListSubscribedAuthors 分页获取用户订阅的作者
func (r *UserRepository) ListSubscribedAuthors(userID uint, offset, limit int) ([]user.User, int64, error) {
	var total int64
	if err := r.db.Model(&user.Subscription{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []user.User
	err := r.db.
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&authors).Error
	return authors, total, err
}

// ===== 作者菜谱（订阅列表展示用） =====

// ListAuthorRecipes 获取作者的菜谱，limit<=0 表示不限制
func (r *UserRepository) ListAuthorRecipes(authorID uint, limit int) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	query := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *UserRepository) CountAuthorRecipes(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&recipe.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
