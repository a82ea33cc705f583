package dto

// IngredientResponse 食材响应
type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// ImportResult 食材导入结果
type ImportResult struct {
	// 新建条数
	Created int `json:"created"`
	// 已存在而跳过的条数
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}
