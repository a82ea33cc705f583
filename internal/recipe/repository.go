package recipe

import (
	"time"

	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/ingredient"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/recipe"
)

// RecipeRepository 菜谱仓储层
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ===== Recipe 基础操作 =====

func (r *RecipeRepository) GetByID(id uint) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	err := r.db.First(&rec, id).Error
	return &rec, err
}

// Create 创建菜谱及其食材关联（事务）
func (r *RecipeRepository) Create(rec *recipe.Recipe, ingredients []recipe.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = rec.ID
		}
		return tx.Create(&ingredients).Error
	})
}

// Update 更新菜谱，食材关联整体替换（事务）
func (r *RecipeRepository) Update(rec *recipe.Recipe, ingredients []recipe.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rec).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", rec.ID).
			Delete(&recipe.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = rec.ID
		}
		return tx.Create(&ingredients).Error
	})
}

// Delete 删除菜谱及其关联数据（事务）
func (r *RecipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).
			Delete(&recipe.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).
			Delete(&recipe.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).
			Delete(&recipe.ShoppingCart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe.Recipe{}, id).Error
	})
}

// List 按过滤条件分页获取菜谱，按创建时间倒序
func (r *RecipeRepository) List(filter ListFilter, offset, limit int) ([]recipe.Recipe, int64, error) {
	query := r.db.Model(&recipe.Recipe{})

	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	// 收藏/购物车过滤只对已登录用户生效
	if filter.ViewerID != 0 {
		if filter.IsFavorited != nil {
			sub := r.db.Model(&recipe.Favorite{}).
				Select("recipe_id").
				Where("user_id = ?", filter.ViewerID)
			if *filter.IsFavorited {
				query = query.Where("id IN (?)", sub)
			} else {
				query = query.Where("id NOT IN (?)", sub)
			}
		}
		if filter.IsInShoppingCart != nil {
			sub := r.db.Model(&recipe.ShoppingCart{}).
				Select("recipe_id").
				Where("user_id = ?", filter.ViewerID)
			if *filter.IsInShoppingCart {
				query = query.Where("id IN (?)", sub)
			} else {
				query = query.Where("id NOT IN (?)", sub)
			}
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []recipe.Recipe
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&recipes).Error
	return recipes, total, err
}

// ListIngredients 获取菜谱的食材行（含名称和单位）
func (r *RecipeRepository) ListIngredients(recipeID uint) ([]dto.IngredientInRecipe, error) {
	var rows []dto.IngredientInRecipe
	err := r.db.Model(&recipe.RecipeIngredient{}).
		Select("ingredients.id, ingredients.name, ingredients.measurement_unit, recipe_ingredients.amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name").
		Scan(&rows).Error
	return rows, err
}

// CountIngredients 统计给定食材ID中实际存在的数量（用于校验）
func (r *RecipeRepository) CountIngredients(ids []uint) (int64, error) {
	var count int64
	err := r.db.Model(&ingredient.Ingredient{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// ===== 收藏 =====

func (r *RecipeRepository) IsFavorited(userID, recipeID uint) bool {
	if userID == 0 {
		return false
	}
	var fav recipe.Favorite
	err := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&fav).Error
	return err == nil
}

func (r *RecipeRepository) AddFavorite(userID, recipeID uint) error {
	fav := &recipe.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(fav).Error
}

// RemoveFavorite 取消收藏，返回删除的行数
func (r *RecipeRepository) RemoveFavorite(userID, recipeID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&recipe.Favorite{})
	return result.RowsAffected, result.Error
}

// ===== 购物车 =====

func (r *RecipeRepository) IsInCart(userID, recipeID uint) bool {
	if userID == 0 {
		return false
	}
	var item recipe.ShoppingCart
	err := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&item).Error
	return err == nil
}

func (r *RecipeRepository) AddToCart(userID, recipeID uint) error {
	item := &recipe.ShoppingCart{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(item).Error
}

// RemoveFromCart 从购物车移除，返回删除的行数
func (r *RecipeRepository) RemoveFromCart(userID, recipeID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&recipe.ShoppingCart{})
	return result.RowsAffected, result.Error
}

// AggregateCartIngredients 聚合购物车内所有菜谱的食材用量
// 按 (名称, 单位) 分组求和，名称排序
func (r *RecipeRepository) AggregateCartIngredients(userID uint) ([]CartIngredient, error) {
	var rows []CartIngredient
	err := r.db.Model(&recipe.ShoppingCart{}).
		Select("ingredients.name, ingredients.measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_carts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&rows).Error
	return rows, err
}

// ListCartRecipes 获取购物车内的菜谱及其作者
func (r *RecipeRepository) ListCartRecipes(userID uint) ([]CartRecipe, error) {
	var rows []CartRecipe
	err := r.db.Model(&recipe.ShoppingCart{}).
		Select("recipes.name, users.username AS author_username").
		Joins("JOIN recipes ON recipes.id = shopping_carts.recipe_id").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("shopping_carts.user_id = ?", userID).
		Order("recipes.name").
		Scan(&rows).Error
	return rows, err
}
