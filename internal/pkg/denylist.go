package pkg

import (
	"context"
	"time"

	"github.com/SidorenkoTatiana/foodgram-st/internal/database"
)

const (
	// 注销令牌的 Redis key 前缀
	DenylistPrefix = "token_denylist:"
)

// DenyToken 将令牌加入注销名单，保留到令牌自然过期为止
func DenyToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已过期的令牌不需要记录
		return nil
	}
	if database.RedisDB == nil {
		return nil
	}

	ctx := context.Background()
	return database.RedisDB.Set(ctx, DenylistPrefix+token, "1", ttl).Err()
}

// IsTokenDenied 检查令牌是否已被注销
func IsTokenDenied(token string) bool {
	if database.RedisDB == nil {
		return false
	}

	ctx := context.Background()
	exists, err := database.RedisDB.Exists(ctx, DenylistPrefix+token).Result()
	if err != nil {
		// Redis 不可用时放行，令牌本身的签名和有效期仍然生效
		return false
	}
	return exists > 0
}
