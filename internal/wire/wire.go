//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"blueprint-ai-api/internal/application/design"
	"blueprint-ai-api/internal/config"
	"blueprint-ai-api/internal/infrastructure/llm"
	"blueprint-ai-api/internal/interfaces/http/handler"
	"blueprint-ai-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		SessionSet,
		LLMSet,
		wire.Bind(new(design.ModelGateway), new(*llm.Gateway)),
		design.NewEngine,
		design.NewService,
		handler.NewHealthHandler,
		handler.NewBlueprintHandler,
		router.New,
	)
	return nil, nil, nil
}

// LLMSet 模型网关提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	llm.NewGateway,
)

// SessionSet 会话存储提供者集合。
// driver 为 memory 时不建立 Redis 连接，相关依赖注入 nil。
var SessionSet = wire.NewSet(
	ProvideRedisClient,
	ProvideSessionRepository,
	ProvideRateLimiter,
)
