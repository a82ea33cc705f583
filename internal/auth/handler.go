package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		authService: NewAuthService(db),
	}
}

// Login 登录
// @Summary 邮箱密码登录，返回访问令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Router /auth/token/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	resp, bizErr := h.authService.Login(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 同时写入 cookie，方便浏览器端使用
	c.SetCookie("access_token", resp.AccessToken, 0, "/", "", false, true)

	dto.SuccessResponse(c, resp)
}

// Logout 注销
// @Summary 注销当前访问令牌
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/token/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := extractToken(c)
	if tokenString == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未提供认证令牌"),
		))
		return
	}

	if bizErr := h.authService.Logout(tokenString); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 清除 cookie
	c.SetCookie("access_token", "", -1, "/", "", false, true)

	dto.SuccessResponse(c, nil)
}

// extractToken 从 cookie 或 Authorization header 获取原始令牌
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
