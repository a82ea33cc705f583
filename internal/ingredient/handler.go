package ingredient

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type IngredientHandler struct {
	ingredientService *IngredientService
}

func NewIngredientHandler(db *gorm.DB) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: NewIngredientService(NewIngredientRepository(db)),
	}
}

// ListIngredients 获取食材列表
// @Summary 获取食材列表（不分页，支持名称前缀搜索）
// @Tags Ingredient
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {object} response.Response{data=[]dto.IngredientResponse}
// @Router /ingredients [get]
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.List(c.Query("name"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取食材列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, ingredients)
}

// GetIngredient 获取食材详情
// @Summary 获取指定食材的详情
// @Tags Ingredient
// @Produce json
// @Param id path int true "食材ID"
// @Success 200 {object} response.Response{data=dto.IngredientResponse}
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的食材ID"),
		))
		return
	}

	resp, bizErr := h.ingredientService.Get(uint(id))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// ImportIngredients 批量导入食材
// @Summary 从 CSV/JSON 文件批量导入食材（仅管理员）
// @Tags Ingredient
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV 或 JSON 文件"
// @Success 200 {object} response.Response{data=dto.ImportResult}
// @Security BearerAuth
// @Router /ingredients/import [post]
func (h *IngredientHandler) ImportIngredients(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("缺少上传文件"),
		))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("读取上传文件失败"),
		))
		return
	}
	defer file.Close()

	rows, err := ParseImportFile(file, fileHeader.Filename)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage(err.Error()),
		))
		return
	}

	result, err := h.ingredientService.Import(rows)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("导入食材失败"),
		))
		return
	}

	dto.SuccessResponse(c, result)
}
