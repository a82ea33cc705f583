package ingredient

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/ingredient"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type IngredientService struct {
	ingredientRepo *IngredientRepository
}

func NewIngredientService(ingredientRepo *IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// List 获取食材列表，支持名称前缀搜索
func (s *IngredientService) List(name string) ([]dto.IngredientResponse, error) {
	ingredients, err := s.ingredientRepo.List(name)
	if err != nil {
		return nil, err
	}

	result := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, toResponse(&ing))
	}
	return result, nil
}

// Get 获取食材详情
func (s *IngredientService) Get(id uint) (*dto.IngredientResponse, *response.BusinessError) {
	ing, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("食材不存在"),
		)
	}
	resp := toResponse(ing)
	return &resp, nil
}

// ImportRow 导入文件中的一行食材
type ImportRow struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// Import 批量导入食材，已存在的（名称+单位）跳过
func (s *IngredientService) Import(rows []ImportRow) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Total: len(rows)}
	for _, row := range rows {
		_, created, err := s.ingredientRepo.GetOrCreate(row.Name, row.MeasurementUnit)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

// ParseImportFile 按文件名后缀解析 CSV 或 JSON 导入文件
func ParseImportFile(r io.Reader, filename string) ([]ImportRow, error) {
	switch {
	case strings.HasSuffix(filename, ".csv"):
		return ParseCSV(r)
	case strings.HasSuffix(filename, ".json"):
		return ParseJSON(r)
	default:
		return nil, fmt.Errorf("不支持的文件格式: %s，仅支持 .csv 和 .json", filename)
	}
}

// ParseCSV 解析 CSV 导入文件，每行格式为 name,measurement_unit
// 首行为表头时自动跳过
func ParseCSV(r io.Reader) ([]ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var rows []ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV 解析失败: %w", err)
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			continue
		}
		// 跳过表头
		if len(rows) == 0 && name == "name" && unit == "measurement_unit" {
			continue
		}
		rows = append(rows, ImportRow{Name: name, MeasurementUnit: unit})
	}
	return rows, nil
}

// ParseJSON 解析 JSON 导入文件，格式为对象数组
func ParseJSON(r io.Reader) ([]ImportRow, error) {
	var rows []ImportRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("JSON 解析失败: %w", err)
	}

	result := make([]ImportRow, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.MeasurementUnit == "" {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func toResponse(ing *ingredient.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:              ing.ID,
		Name:            ing.Name,
		MeasurementUnit: ing.MeasurementUnit,
	}
}
