package recipe

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
	"github.com/SidorenkoTatiana/foodgram-st/internal/user"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type RecipeHandler struct {
	recipeService *RecipeService
}

func NewRecipeHandler(db *gorm.DB) *RecipeHandler {
	return &RecipeHandler{
		recipeService: NewRecipeService(NewRecipeRepository(db), user.NewUserRepository(db)),
	}
}

// ListRecipes 获取菜谱列表
// @Summary 获取菜谱列表（分页，支持筛选）
// @Tags Recipe
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(6)
// @Param author query int false "按作者ID筛选"
// @Param is_favorited query int false "仅收藏的菜谱（1/0）"
// @Param is_in_shopping_cart query int false "仅购物车中的菜谱（1/0）"
// @Success 200 {object} response.Response{data=dto.Page}
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, limit := dto.ParsePageParams(c)

	filter := ListFilter{ViewerID: middleware.CurrentUserID(c)}
	if author := c.Query("author"); author != "" {
		id, err := strconv.Atoi(author)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.ParseError),
				response.WithErrorMessage("无效的作者ID"),
			))
			return
		}
		filter.AuthorID = uint(id)
	}
	// 匿名用户忽略收藏/购物车筛选
	if filter.ViewerID != 0 {
		filter.IsFavorited = parseBoolFlag(c.Query("is_favorited"))
		filter.IsInShoppingCart = parseBoolFlag(c.Query("is_in_shopping_cart"))
	}

	recipes, total, err := h.recipeService.List(filter, page, limit)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取菜谱列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, dto.NewPage(c, total, page, limit, recipes))
}

// GetRecipe 获取菜谱详情
// @Summary 获取指定菜谱的详情
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeResponse}
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	resp, bizErr := h.recipeService.Get(recipeID, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// CreateRecipe 创建菜谱
// @Summary 创建新菜谱
// @Tags Recipe
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipeRequest true "创建菜谱请求"
// @Success 200 {object} response.Response{data=dto.RecipeResponse}
// @Security BearerAuth
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	resp, bizErr := h.recipeService.Create(req, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// UpdateRecipe 更新菜谱
// @Summary 更新菜谱（仅作者）
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path int true "菜谱ID"
// @Param request body dto.UpdateRecipeRequest true "更新菜谱请求"
// @Success 200 {object} response.Response{data=dto.RecipeResponse}
// @Security BearerAuth
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	resp, bizErr := h.recipeService.Update(recipeID, req, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// DeleteRecipe 删除菜谱
// @Summary 删除菜谱（仅作者）
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if bizErr := h.recipeService.Delete(recipeID, middleware.CurrentUserID(c)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// GetShortLink 获取菜谱短链接
// @Summary 获取菜谱的短链接
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.ShortLinkResponse}
// @Router /recipes/{id}/get-link [get]
func (h *RecipeHandler) GetShortLink(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	resp, bizErr := h.recipeService.GetShortLink(recipeID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// Favorite 收藏菜谱
// @Summary 收藏菜谱
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeMinified}
// @Security BearerAuth
// @Router /recipes/{id}/favorite [post]
func (h *RecipeHandler) Favorite(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	minified, bizErr := h.recipeService.Favorite(middleware.CurrentUserID(c), recipeID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, minified)
}

// Unfavorite 取消收藏
// @Summary 取消收藏菜谱
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /recipes/{id}/favorite [delete]
func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if bizErr := h.recipeService.Unfavorite(middleware.CurrentUserID(c), recipeID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// AddToCart 菜谱加入购物车
// @Summary 菜谱加入购物车
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeMinified}
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) AddToCart(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	minified, bizErr := h.recipeService.AddToCart(middleware.CurrentUserID(c), recipeID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, minified)
}

// RemoveFromCart 从购物车移除菜谱
// @Summary 从购物车移除菜谱
// @Tags Recipe
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if bizErr := h.recipeService.RemoveFromCart(middleware.CurrentUserID(c), recipeID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// DownloadShoppingCart 下载购物清单
// @Summary 下载购物清单（文本格式，食材按名称聚合）
// @Tags Recipe
// @Produce plain
// @Success 200 {string} string "购物清单文本"
// @Security BearerAuth
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	report, err := h.recipeService.BuildShoppingList(middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成购物清单失败"),
		))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=shopping_list.txt")
	c.String(200, report)
}

// parseRecipeID 解析路径中的菜谱ID，解析失败时已写入响应
func parseRecipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的菜谱ID"),
		))
		return 0, false
	}
	return uint(id), true
}

// parseBoolFlag 解析 1/0 形式的筛选参数
func parseBoolFlag(v string) *bool {
	switch v {
	case "1", "true":
		b := true
		return &b
	case "0", "false":
		b := false
		return &b
	}
	return nil
}
