package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/pkg"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
	"github.com/SidorenkoTatiana/foodgram-st/pkg/response"
)

func TestLogin_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)

	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{Secret: "test-secret-key", ExpireTime: 24},
	}

	u := testutils.CreateTestUser(db)
	service := NewAuthService(db)

	tests := []struct {
		name        string
		email       string
		password    string
		wantErrCode response.ResponseCode
	}{
		{
			name:     "正确的邮箱和密码",
			email:    u.Email,
			password: testutils.TestPassword,
		},
		{
			name:        "密码错误",
			email:       u.Email,
			password:    "wrong-password",
			wantErrCode: response.Unauthorized,
		},
		{
			name:        "邮箱不存在",
			email:       "nobody@example.com",
			password:    testutils.TestPassword,
			wantErrCode: response.Unauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.Login(LoginRequest{Email: tt.email, Password: tt.password})

			if tt.wantErrCode != 0 {
				assert.NotNil(t, bizErr)
				assert.Equal(t, tt.wantErrCode, bizErr.Code)
				return
			}

			assert.Nil(t, bizErr)
			assert.NotEmpty(t, resp.AccessToken)

			// 令牌里携带的是该用户的信息
			claims, err := pkg.ParseAccessToken(resp.AccessToken)
			assert.NoError(t, err)
			assert.Equal(t, u.ID, claims.UserID)
			assert.Equal(t, u.Email, claims.Email)
		})
	}
}
