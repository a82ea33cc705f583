package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
)

func setupJWTConfig(expireHours int) {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: expireHours,
		},
	}
}

func TestGenerateAccessToken(t *testing.T) {
	setupJWTConfig(24)

	tests := []struct {
		name     string
		userID   uint
		username string
		email    string
		role     string
	}{
		{
			name:     "生成有效的访问令牌",
			userID:   1,
			username: "testuser",
			email:    "test@example.com",
			role:     "user",
		},
		{
			name:     "管理员角色",
			userID:   2,
			username: "admin",
			email:    "admin@example.com",
			role:     "admin",
		},
		{
			name:     "用户名为空",
			userID:   3,
			username: "",
			email:    "test@example.com",
			role:     "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAccessToken(tt.userID, tt.username, tt.email, tt.role)

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestParseAccessToken(t *testing.T) {
	setupJWTConfig(24)

	t.Run("解析有效令牌", func(t *testing.T) {
		token, err := GenerateAccessToken(42, "testuser", "test@example.com", "user")
		assert.NoError(t, err)

		claims, err := ParseAccessToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "testuser", claims.Username)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("解析无效令牌", func(t *testing.T) {
		claims, err := ParseAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("解析被篡改的令牌", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "testuser", "test@example.com", "user")
		assert.NoError(t, err)

		claims, err := ParseAccessToken(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("解析过期令牌", func(t *testing.T) {
		setupJWTConfig(-1)
		token, err := GenerateAccessToken(1, "testuser", "test@example.com", "user")
		assert.NoError(t, err)

		setupJWTConfig(24)
		claims, err := ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, claims)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "testuser", "test@example.com", "user")
		assert.NoError(t, err)

		config.Conf.JWT.Secret = "another-secret"
		claims, err := ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
