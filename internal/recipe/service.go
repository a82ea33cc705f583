package recipe

import (
	"fmt"
	"strings"
	"time"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/upload"
	"github.com/SidorenkoTatiana/foodgram-st/internal/user"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type RecipeService struct {
	recipeRepo *RecipeRepository
	userRepo   *user.UserRepository
}

func NewRecipeService(recipeRepo *RecipeRepository, userRepo *user.UserRepository) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
	}
}

// List 分页获取菜谱列表
func (s *RecipeService) List(filter ListFilter, page, limit int) ([]dto.RecipeResponse, int64, error) {
	recipes, total, err := s.recipeRepo.List(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.toResponse(&recipes[i], filter.ViewerID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *resp)
	}
	return result, total, nil
}

// Get 获取菜谱详情
func (s *RecipeService) Get(id, viewerID uint) (*dto.RecipeResponse, *response.BusinessError) {
	rec, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	resp, err := s.toResponse(rec, viewerID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取菜谱失败"),
		)
	}
	return resp, nil
}

// Create 创建菜谱
func (s *RecipeService) Create(req dto.CreateRecipeRequest, userID uint) (*dto.RecipeResponse, *response.BusinessError) {
	if bizErr := s.validateIngredients(req.Ingredients); bizErr != nil {
		return nil, bizErr
	}

	imagePath, err := upload.SaveBase64Image(req.Image, "recipes_images")
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(err.Error()),
		)
	}

	rec := &recipe.Recipe{
		AuthorID:    userID,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.recipeRepo.Create(rec, toRecipeIngredients(req.Ingredients)); err != nil {
		upload.Remove(imagePath)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建菜谱失败"),
		)
	}

	resp, err := s.toResponse(rec, userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取菜谱失败"),
		)
	}
	return resp, nil
}

// Update 更新菜谱，仅作者可操作
func (s *RecipeService) Update(id uint, req dto.UpdateRecipeRequest, userID uint) (*dto.RecipeResponse, *response.BusinessError) {
	rec, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	if rec.AuthorID != userID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有作者可以修改菜谱"),
		)
	}

	if bizErr := s.validateIngredients(req.Ingredients); bizErr != nil {
		return nil, bizErr
	}

	// 有新图片时替换旧图
	oldImage := ""
	if req.Image != "" {
		imagePath, err := upload.SaveBase64Image(req.Image, "recipes_images")
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage(err.Error()),
			)
		}
		oldImage = rec.Image
		rec.Image = imagePath
	}

	rec.Name = req.Name
	rec.Text = req.Text
	rec.CookingTime = req.CookingTime
	rec.UpdatedAt = time.Now()

	if err := s.recipeRepo.Update(rec, toRecipeIngredients(req.Ingredients)); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新菜谱失败"),
		)
	}
	if oldImage != "" {
		upload.Remove(oldImage)
	}

	resp, err := s.toResponse(rec, userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取菜谱失败"),
		)
	}
	return resp, nil
}

// Delete 删除菜谱，仅作者可操作
func (s *RecipeService) Delete(id, userID uint) *response.BusinessError {
	rec, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	if rec.AuthorID != userID {
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有作者可以删除菜谱"),
		)
	}

	if err := s.recipeRepo.Delete(id); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除菜谱失败"),
		)
	}

	upload.Remove(rec.Image)
	return nil
}

// GetShortLink 生成菜谱短链接
func (s *RecipeService) GetShortLink(id uint) (*dto.ShortLinkResponse, *response.BusinessError) {
	if _, err := s.recipeRepo.GetByID(id); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	base := strings.TrimRight(config.Conf.Server.BaseURL, "/")
	return &dto.ShortLinkResponse{
		ShortLink: fmt.Sprintf("%s/s/recipes/%d", base, id),
	}, nil
}

// Favorite 收藏菜谱，返回菜谱简要信息
func (s *RecipeService) Favorite(userID, recipeID uint) (*dto.RecipeMinified, *response.BusinessError) {
	rec, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	if s.recipeRepo.IsFavorited(userID, recipeID) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.AlreadyExists),
			response.WithErrorMessage("菜谱已收藏"),
		)
	}

	if err := s.recipeRepo.AddFavorite(userID, recipeID); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("收藏失败"),
		)
	}

	return minify(rec), nil
}

// Unfavorite 取消收藏
func (s *RecipeService) Unfavorite(userID, recipeID uint) *response.BusinessError {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	rows, err := s.recipeRepo.RemoveFavorite(userID, recipeID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("取消收藏失败"),
		)
	}
	if rows == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱未收藏"),
		)
	}
	return nil
}

// AddToCart 菜谱加入购物车，返回菜谱简要信息
func (s *RecipeService) AddToCart(userID, recipeID uint) (*dto.RecipeMinified, *response.BusinessError) {
	rec, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	if s.recipeRepo.IsInCart(userID, recipeID) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.AlreadyExists),
			response.WithErrorMessage("菜谱已在购物车中"),
		)
	}

	if err := s.recipeRepo.AddToCart(userID, recipeID); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("加入购物车失败"),
		)
	}

	return minify(rec), nil
}

// RemoveFromCart 从购物车移除菜谱
func (s *RecipeService) RemoveFromCart(userID, recipeID uint) *response.BusinessError {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不存在"),
		)
	}

	rows, err := s.recipeRepo.RemoveFromCart(userID, recipeID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("从购物车移除失败"),
		)
	}
	if rows == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("菜谱不在购物车中"),
		)
	}
	return nil
}

// BuildShoppingList 生成购物清单文本
func (s *RecipeService) BuildShoppingList(userID uint) (string, error) {
	ingredients, err := s.recipeRepo.AggregateCartIngredients(userID)
	if err != nil {
		return "", err
	}

	recipes, err := s.recipeRepo.ListCartRecipes(userID)
	if err != nil {
		return "", err
	}

	return FormatShoppingList(ingredients, recipes, time.Now()), nil
}

// FormatShoppingList 将聚合结果格式化为购物清单文本
func FormatShoppingList(ingredients []CartIngredient, recipes []CartRecipe, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("购物清单 (%s):\n", now.Format("2006-01-02 15:04:05")))
	b.WriteString("食材:\n")
	for _, ing := range ingredients {
		b.WriteString(fmt.Sprintf("- %s - %d (%s)\n", ing.Name, ing.TotalAmount, ing.MeasurementUnit))
	}
	b.WriteString("菜谱:\n")
	for _, rec := range recipes {
		b.WriteString(fmt.Sprintf("- %s (作者: %s)\n", rec.Name, rec.AuthorUsername))
	}

	return b.String()
}

// validateIngredients 校验食材列表：不允许重复，ID 必须存在
func (s *RecipeService) validateIngredients(ingredients []dto.IngredientAmountRequest) *response.BusinessError {
	seen := make(map[uint]bool, len(ingredients))
	ids := make([]uint, 0, len(ingredients))
	for _, ing := range ingredients {
		if seen[ing.ID] {
			return response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("食材列表中存在重复的食材"),
			)
		}
		seen[ing.ID] = true
		ids = append(ids, ing.ID)
	}

	count, err := s.recipeRepo.CountIngredients(ids)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("食材校验失败"),
		)
	}
	if count != int64(len(ids)) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("存在不存在的食材ID"),
		)
	}
	return nil
}

// toRecipeIngredients 请求中的食材转换为关联记录
func toRecipeIngredients(ingredients []dto.IngredientAmountRequest) []recipe.RecipeIngredient {
	rows := make([]recipe.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, recipe.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	return rows
}

// minify 菜谱简要信息
func minify(rec *recipe.Recipe) *dto.RecipeMinified {
	return &dto.RecipeMinified{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       upload.URL(rec.Image),
		CookingTime: rec.CookingTime,
	}
}

// toResponse 组装菜谱详情响应
func (s *RecipeService) toResponse(rec *recipe.Recipe, viewerID uint) (*dto.RecipeResponse, error) {
	author, err := s.userRepo.GetByID(rec.AuthorID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.recipeRepo.ListIngredients(rec.ID)
	if err != nil {
		return nil, err
	}

	profile := dto.UserProfile{
		ID:        author.ID,
		Email:     author.Email,
		Username:  author.Username,
		FirstName: author.FirstName,
		LastName:  author.LastName,
	}
	if author.Avatar != "" {
		url := upload.URL(author.Avatar)
		profile.Avatar = &url
	}
	if viewerID != 0 && viewerID != author.ID {
		profile.IsSubscribed = s.userRepo.IsSubscribed(viewerID, author.ID)
	}

	var favorited, inCart bool
	if viewerID != 0 {
		favorited = s.recipeRepo.IsFavorited(viewerID, rec.ID)
		inCart = s.recipeRepo.IsInCart(viewerID, rec.ID)
	}

	return &dto.RecipeResponse{
		ID:               rec.ID,
		Author:           profile,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             rec.Name,
		Image:            upload.URL(rec.Image),
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
	}, nil
}
