package pkg_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/database"
	"github.com/SidorenkoTatiana/foodgram-st/internal/middleware"
	"github.com/SidorenkoTatiana/foodgram-st/internal/pkg"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
)

func authContext(t *testing.T, token string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	return c
}

func TestTokenDenylist_Integration(t *testing.T) {
	redisClient := testutils.SetupTestRedis(t)
	if redisClient == nil {
		t.Skip("Redis not available")
	}
	database.RedisDB = redisClient

	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{Secret: "test-secret-key", ExpireTime: 24},
	}

	token, err := pkg.GenerateAccessToken(7, "testuser", "test@example.com", "user")
	assert.NoError(t, err)

	t.Run("未注销的令牌不在名单中", func(t *testing.T) {
		assert.False(t, pkg.IsTokenDenied(token))
	})

	t.Run("注销后的令牌在名单中", func(t *testing.T) {
		assert.NoError(t, pkg.DenyToken(token, time.Minute))
		assert.True(t, pkg.IsTokenDenied(token))
	})

	t.Run("中间件拒绝已注销的令牌", func(t *testing.T) {
		c := authContext(t, token)
		middleware.JWTAuth()(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, uint(0), middleware.CurrentUserID(c))
	})

	t.Run("中间件放行未注销的令牌", func(t *testing.T) {
		fresh, err := pkg.GenerateAccessToken(8, "other", "other@example.com", "user")
		assert.NoError(t, err)

		c := authContext(t, fresh)
		middleware.JWTAuth()(c)
		assert.False(t, c.IsAborted())
		assert.Equal(t, uint(8), middleware.CurrentUserID(c))
	})

	t.Run("已过期的令牌不写入名单", func(t *testing.T) {
		assert.NoError(t, pkg.DenyToken("expired-token", 0))
		assert.False(t, pkg.IsTokenDenied("expired-token"))
	})
}
