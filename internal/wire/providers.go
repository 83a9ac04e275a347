// Package wire 提供依赖注入配置
package wire

import (
	"fmt"

	"blueprint-ai-api/internal/config"
	"blueprint-ai-api/internal/domain/repository"
	"blueprint-ai-api/internal/infrastructure/persistence/memory"
	"blueprint-ai-api/internal/infrastructure/persistence/redis"
	"blueprint-ai-api/internal/interfaces/http/middleware"
)

// SessionDriverRedis redis 会话驱动名
const SessionDriverRedis = "redis"

// ProvideRedisClient 按配置提供 Redis 客户端。
// 会话驱动为 memory 且未启用限流时不建立连接，返回 nil。
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	if cfg.Session.Driver != SessionDriverRedis && !cfg.Security.RateLimit.Enabled {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideSessionRepository 按配置选择会话存储实现
func ProvideSessionRepository(cfg *config.Config, client *redis.Client) (repository.SessionRepository, error) {
	if cfg.Session.Driver == SessionDriverRedis {
		if client == nil {
			return nil, fmt.Errorf("session driver is redis but redis client is not configured")
		}
		return redis.NewSessionStore(client, cfg.Session.KeyPrefix, cfg.Session.TTL), nil
	}
	return memory.NewSessionStore(), nil
}

// ProvideRateLimiter 提供限流器，未配置 Redis 时返回 nil（中间件按禁用处理）
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client)
}
