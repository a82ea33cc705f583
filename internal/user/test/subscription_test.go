package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
	userPkg "github.com/SidorenkoTatiana/foodgram-st/internal/user"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

func setupUserService(t *testing.T) (*userPkg.UserService, *gorm.DB) {
	db := testutils.SetupTestDB(t)

	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		Media:  config.MediaConfig{Root: t.TempDir(), URLPrefix: "/media"},
	}

	service := userPkg.NewUserService(userPkg.NewUserRepository(db))
	return service, db
}

func registerReq(username, email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "Qwerty12345",
	}
}

func TestSubscribe_Integration(t *testing.T) {
	service, db := setupUserService(t)

	follower := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	testutils.CreateTestRecipe(db, author.ID)
	testutils.CreateTestRecipe(db, author.ID)
	testutils.CreateTestRecipe(db, author.ID)

	t.Run("订阅作者返回作者信息和菜谱", func(t *testing.T) {
		item, bizErr := service.Subscribe(follower.ID, author.ID, 0)
		assert.Nil(t, bizErr)
		assert.Equal(t, author.ID, item.ID)
		assert.True(t, item.IsSubscribed)
		assert.Equal(t, int64(3), item.RecipesCount)
		assert.Len(t, item.Recipes, 3)
	})

	t.Run("重复订阅返回已存在错误", func(t *testing.T) {
		_, bizErr := service.Subscribe(follower.ID, author.ID, 0)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.AlreadyExists, bizErr.Code)
	})

	t.Run("不能订阅自己", func(t *testing.T) {
		_, bizErr := service.Subscribe(follower.ID, follower.ID, 0)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	})

	t.Run("订阅不存在的作者", func(t *testing.T) {
		_, bizErr := service.Subscribe(follower.ID, 999999, 0)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})

	t.Run("订阅列表限制菜谱数量", func(t *testing.T) {
		items, total, err := service.ListSubscriptions(follower.ID, 1, 10, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, items, 1)
		assert.Len(t, items[0].Recipes, 2)
		assert.Equal(t, int64(3), items[0].RecipesCount)
	})

	t.Run("取消订阅", func(t *testing.T) {
		bizErr := service.Unsubscribe(follower.ID, author.ID)
		assert.Nil(t, bizErr)
	})

	t.Run("取消未订阅的作者返回不存在错误", func(t *testing.T) {
		bizErr := service.Unsubscribe(follower.ID, author.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestRegister_Integration(t *testing.T) {
	service, db := setupUserService(t)

	existing := testutils.CreateTestUser(db)

	t.Run("注册新用户", func(t *testing.T) {
		profile, bizErr := service.Register(registerReq("newuser", "new@example.com"))
		assert.Nil(t, bizErr)
		assert.Equal(t, "newuser", profile.Username)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("用户名已存在", func(t *testing.T) {
		_, bizErr := service.Register(registerReq(existing.Username, "other@example.com"))
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.AlreadyExists, bizErr.Code)
	})

	t.Run("邮箱已被注册", func(t *testing.T) {
		_, bizErr := service.Register(registerReq("another", existing.Email))
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.AlreadyExists, bizErr.Code)
	})
}
