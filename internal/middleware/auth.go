package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/SidorenkoTatiana/foodgram-st/internal/dto"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/user"
	"github.com/SidorenkoTatiana/foodgram-st/internal/pkg"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*pkg.Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// 如果 cookie 中没有，尝试从 Authorization header 获取
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("未提供认证令牌")
		}

		// 验证格式: Bearer <token>
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		} else {
			return nil, fmt.Errorf("认证格式错误")
		}
	}

	// 已注销的令牌直接拒绝
	if pkg.IsTokenDenied(tokenString) {
		return nil, fmt.Errorf("认证令牌已注销")
	}

	claims, err := pkg.ParseAccessToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}

	return claims, nil
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth 可选的 JWT 认证中间件（不强制要求认证，但如果有token则解析）
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
			c.Set("user_role", claims.Role)
		}
		// 无论是否有 token，都继续执行
		c.Next()
	}
}

// AdminOnly 管理员权限中间件，必须在 JWTAuth 之后使用
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != user.RoleAdmin {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("需要管理员权限"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 从上下文中获取当前用户ID，未认证时返回0
func CurrentUserID(c *gin.Context) uint {
	if uid, exists := c.Get("user_id"); exists && uid != nil {
		if id, ok := uid.(uint); ok {
			return id
		}
	}
	return 0
}
