// Package ingredient 食材相关模型
package ingredient

// Ingredient 食材表（基础数据，通常由管理员批量导入）
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(128);not null;uniqueIndex:idx_name_unit" json:"name"`
	// 计量单位，如 克、毫升
	MeasurementUnit string `gorm:"type:varchar(64);not null;uniqueIndex:idx_name_unit" json:"measurement_unit"`
}
