package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
)

func TestGetOrCreate_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewIngredientRepository(db)

	t.Run("不存在时创建", func(t *testing.T) {
		ing, created, err := repo.GetOrCreate("мука", "г")
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, ing.ID)
	})

	t.Run("已存在时复用", func(t *testing.T) {
		first, _, err := repo.GetOrCreate("сахар", "г")
		assert.NoError(t, err)

		second, created, err := repo.GetOrCreate("сахар", "г")
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("同名不同单位视为不同食材", func(t *testing.T) {
		byGram, _, err := repo.GetOrCreate("молоко", "мл")
		assert.NoError(t, err)

		byPiece, created, err := repo.GetOrCreate("молоко", "л")
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, byGram.ID, byPiece.ID)
	})
}

func TestListByPrefix_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewIngredientRepository(db)
	service := NewIngredientService(repo)

	testutils.CreateTestIngredient(db, testutils.WithIngredientName("абрикос"))
	testutils.CreateTestIngredient(db, testutils.WithIngredientName("абрикосовое варенье"))
	testutils.CreateTestIngredient(db, testutils.WithIngredientName("мёд"))

	t.Run("按前缀过滤", func(t *testing.T) {
		result, err := service.List("абрикос")
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("前缀不匹配中间部分", func(t *testing.T) {
		result, err := service.List("варенье")
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestImport_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))

	rows := []ImportRow{
		{Name: "соль", MeasurementUnit: "г"},
		{Name: "перец", MeasurementUnit: "г"},
	}

	first, err := service.Import(rows)
	assert.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Skipped)

	// 重复导入全部跳过
	second, err := service.Import(rows)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
}
