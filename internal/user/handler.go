package user

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: NewUserService(NewUserRepository(db)),
	}
}

// Register 用户注册
// @Summary 注册新用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 200 {object} response.Response{data=dto.UserProfile}
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	profile, bizErr := h.userService.Register(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, profile)
}

// ListUsers 获取用户列表
// @Summary 获取用户列表（分页）
// @Tags User
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(6)
// @Success 200 {object} response.Response{data=dto.Page}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := dto.ParsePageParams(c)
	viewerID := middleware.CurrentUserID(c)

	profiles, total, err := h.userService.ListUsers(viewerID, page, limit)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取用户列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, dto.NewPage(c, total, page, limit, profiles))
}

// GetUser 获取用户信息
// @Summary 获取指定用户的信息
// @Tags User
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserProfile}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的用户ID"),
		))
		return
	}

	viewerID := middleware.CurrentUserID(c)

	profile, bizErr := h.userService.GetProfile(uint(userID), viewerID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, profile)
}

// Me 获取当前用户信息
// @Summary 获取当前登录用户的信息
// @Tags User
// @Produce json
// @Success 200 {object} response.Response{data=dto.UserProfile}
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	profile, bizErr := h.userService.GetProfile(userID, userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, profile)
}

// SetPassword 修改密码
// @Summary 修改当前用户的密码
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SetPasswordRequest true "修改密码请求"
// @Success 200 {object} response.Response
// @Router /users/set_password [post]
func (h *UserHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.userService.SetPassword(middleware.CurrentUserID(c), req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// SetAvatar 设置头像
// @Summary 上传当前用户的头像（Base64）
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.AvatarRequest true "头像请求"
// @Success 200 {object} response.Response
// @Router /users/me/avatar [put]
func (h *UserHandler) SetAvatar(c *gin.Context) {
	var req dto.AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	avatarURL, bizErr := h.userService.SetAvatar(middleware.CurrentUserID(c), req.Avatar)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"avatar": avatarURL})
}

// DeleteAvatar 删除头像
// @Summary 删除当前用户的头像
// @Tags User
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/me/avatar [delete]
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	if bizErr := h.userService.DeleteAvatar(middleware.CurrentUserID(c)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// ListSubscriptions 获取订阅列表
// @Summary 获取当前用户订阅的作者列表（分页）
// @Tags Subscription
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(6)
// @Param recipes_limit query int false "每个作者返回的菜谱数量"
// @Success 200 {object} response.Response{data=dto.Page}
// @Router /users/subscriptions [get]
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	page, limit := dto.ParsePageParams(c)
	recipesLimit, _ := strconv.Atoi(c.Query("recipes_limit"))

	items, total, err := h.userService.ListSubscriptions(
		middleware.CurrentUserID(c), page, limit, recipesLimit)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取订阅列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, dto.NewPage(c, total, page, limit, items))
}

// Subscribe 订阅作者
// @Summary 订阅指定作者
// @Tags Subscription
// @Produce json
// @Param id path int true "作者ID"
// @Param recipes_limit query int false "返回的菜谱数量"
// @Success 200 {object} response.Response{data=dto.SubscriptionItem}
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的作者ID"),
		))
		return
	}

	recipesLimit, _ := strconv.Atoi(c.Query("recipes_limit"))

	item, bizErr := h.userService.Subscribe(
		middleware.CurrentUserID(c), uint(authorID), recipesLimit)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, item)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅指定作者
// @Tags Subscription
// @Produce json
// @Param id path int true "作者ID"
// @Success 200 {object} response.Response
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的作者ID"),
		))
		return
	}

	if bizErr := h.userService.Unsubscribe(middleware.CurrentUserID(c), uint(authorID)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}
