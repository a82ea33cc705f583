package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/pkg"
	"github.com/SidorenkoTatiana/foodgram-st/internal/user"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

type AuthService struct {
	userRepo *user.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		userRepo: user.NewUserRepository(db),
	}
}

// Login 邮箱密码登录，成功返回访问令牌
func (s *AuthService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	return LoginResponse{AccessToken: token}, nil
}

// Logout 注销当前令牌：加入 Redis 注销名单直到令牌自然过期
func (s *AuthService) Logout(tokenString string) *response.BusinessError {
	claims, err := pkg.ParseAccessToken(tokenString)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("无效的认证令牌"),
		)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := pkg.DenyToken(tokenString, ttl); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注销失败"),
		)
	}
	return nil
}
