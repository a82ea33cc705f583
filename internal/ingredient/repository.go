package ingredient

import (
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/model/ingredient"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List 获取食材列表，name 非空时按名称前缀过滤（不分页）
func (r *IngredientRepository) List(name string) ([]ingredient.Ingredient, error) {
	var ingredients []ingredient.Ingredient
	query := r.db.Model(&ingredient.Ingredient{})
	if name != "" {
		query = query.Where("name ILIKE ?", name+"%")
	}
	err := query.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(id uint) (*ingredient.Ingredient, error) {
	var ing ingredient.Ingredient
	if err := r.db.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// GetOrCreate 按名称+单位查找，不存在时创建，返回是否新建
func (r *IngredientRepository) GetOrCreate(name, measurementUnit string) (*ingredient.Ingredient, bool, error) {
	var ing ingredient.Ingredient
	err := r.db.Where("name = ? AND measurement_unit = ?", name, measurementUnit).First(&ing).Error
	if err == nil {
		return &ing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	ing = ingredient.Ingredient{Name: name, MeasurementUnit: measurementUnit}
	if err := r.db.Create(&ing).Error; err != nil {
		return nil, false, err
	}
	return &ing, true, nil
}
