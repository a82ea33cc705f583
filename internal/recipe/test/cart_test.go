package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	recipePkg "github.com/SidorenkoTatiana/foodgram-st/internal/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

func TestFavorite_Integration(t *testing.T) {
	service, db := setupRecipeService(t)

	author := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)
	rec := testutils.CreateTestRecipe(db, author.ID)

	t.Run("收藏菜谱返回简要信息", func(t *testing.T) {
		minified, bizErr := service.Favorite(viewer.ID, rec.ID)
		assert.Nil(t, bizErr)
		assert.Equal(t, rec.ID, minified.ID)
		assert.Equal(t, rec.Name, minified.Name)
	})

	t.Run("重复收藏返回已存在错误", func(t *testing.T) {
		_, bizErr := service.Favorite(viewer.ID, rec.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.AlreadyExists, bizErr.Code)
	})

	t.Run("收藏后的菜谱详情标记 is_favorited", func(t *testing.T) {
		resp, bizErr := service.Get(rec.ID, viewer.ID)
		assert.Nil(t, bizErr)
		assert.True(t, resp.IsFavorited)
	})

	t.Run("取消收藏", func(t *testing.T) {
		bizErr := service.Unfavorite(viewer.ID, rec.ID)
		assert.Nil(t, bizErr)
	})

	t.Run("取消未收藏的菜谱返回不存在错误", func(t *testing.T) {
		bizErr := service.Unfavorite(viewer.ID, rec.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})

	t.Run("收藏不存在的菜谱", func(t *testing.T) {
		_, bizErr := service.Favorite(viewer.ID, 999999)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestShoppingCart_Integration(t *testing.T) {
	service, db := setupRecipeService(t)

	author := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)

	// 两道菜共用一种食材，购物清单应合并用量
	flour := testutils.CreateTestIngredient(db, testutils.WithIngredientName("мука"), testutils.WithMeasurementUnit("г"))
	egg := testutils.CreateTestIngredient(db, testutils.WithIngredientName("яйцо"), testutils.WithMeasurementUnit("шт"))

	pancakes := testutils.CreateTestRecipe(db, author.ID, testutils.WithRecipeName("Блины"))
	testutils.AddRecipeIngredient(db, pancakes.ID, flour.ID, 200)
	testutils.AddRecipeIngredient(db, pancakes.ID, egg.ID, 2)

	bread := testutils.CreateTestRecipe(db, author.ID, testutils.WithRecipeName("Хлеб"))
	testutils.AddRecipeIngredient(db, bread.ID, flour.ID, 500)

	t.Run("加入购物车", func(t *testing.T) {
		minified, bizErr := service.AddToCart(viewer.ID, pancakes.ID)
		assert.Nil(t, bizErr)
		assert.Equal(t, pancakes.ID, minified.ID)

		_, bizErr = service.AddToCart(viewer.ID, bread.ID)
		assert.Nil(t, bizErr)
	})

	t.Run("重复加入返回已存在错误", func(t *testing.T) {
		_, bizErr := service.AddToCart(viewer.ID, pancakes.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.AlreadyExists, bizErr.Code)
	})

	t.Run("购物清单按食材聚合用量", func(t *testing.T) {
		report, err := service.BuildShoppingList(viewer.ID)
		assert.NoError(t, err)
		assert.Contains(t, report, "мука - 700 (г)")
		assert.Contains(t, report, "яйцо - 2 (шт)")
		assert.Contains(t, report, "Блины")
		assert.Contains(t, report, "Хлеб")
	})

	t.Run("从购物车移除", func(t *testing.T) {
		bizErr := service.RemoveFromCart(viewer.ID, bread.ID)
		assert.Nil(t, bizErr)

		report, err := service.BuildShoppingList(viewer.ID)
		assert.NoError(t, err)
		assert.Contains(t, report, "мука - 200 (г)")
		assert.NotContains(t, report, "Хлеб")
	})

	t.Run("移除不在购物车中的菜谱", func(t *testing.T) {
		bizErr := service.RemoveFromCart(viewer.ID, bread.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}

func TestListRecipes_Integration(t *testing.T) {
	service, db := setupRecipeService(t)

	author := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)

	first := testutils.CreateTestRecipe(db, author.ID)
	testutils.CreateTestRecipe(db, author.ID)
	testutils.CreateTestRecipe(db, other.ID)

	t.Run("按作者筛选", func(t *testing.T) {
		recipes, total, err := service.List(recipePkg.ListFilter{AuthorID: author.ID, ViewerID: viewer.ID}, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, rec := range recipes {
			assert.Equal(t, author.ID, rec.Author.ID)
		}
	})

	t.Run("仅收藏的菜谱", func(t *testing.T) {
		_, bizErr := service.Favorite(viewer.ID, first.ID)
		assert.Nil(t, bizErr)

		favorited := true
		recipes, total, err := service.List(recipePkg.ListFilter{ViewerID: viewer.ID, IsFavorited: &favorited}, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, first.ID, recipes[0].ID)
	})

	t.Run("分页", func(t *testing.T) {
		recipes, total, err := service.List(recipePkg.ListFilter{ViewerID: viewer.ID}, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, recipes, 2)
	})
}
