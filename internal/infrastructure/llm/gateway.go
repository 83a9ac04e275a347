package llm

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/eino/schema"

	"blueprint-ai-api/internal/application/design"
	"blueprint-ai-api/internal/config"
	"blueprint-ai-api/pkg/logger"
	"blueprint-ai-api/pkg/metrics"
)

const defaultCallTimeout = 120 * time.Second

// Gateway 基于 Eino 的模型网关，实现 design.ModelGateway。
// 网关吞掉模型侧的一切失败（客户端构建失败、调用超时、空响应），
// 统一降级为兜底蓝图文本，保证上层流水线永远有输入可用。
type Gateway struct {
	factory  *EinoFactory
	provider string
	model    string
	timeout  time.Duration
}

var _ design.ModelGateway = (*Gateway)(nil)

// NewGateway 创建模型网关，使用配置中的默认提供商
func NewGateway(cfg *config.Config, factory *EinoFactory) *Gateway {
	provider := cfg.LLM.DefaultProvider
	g := &Gateway{
		factory:  factory,
		provider: provider,
		timeout:  defaultCallTimeout,
	}
	if pc, ok := cfg.LLM.Providers[provider]; ok {
		g.model = pc.Model
		if pc.Timeout > 0 {
			g.timeout = pc.Timeout
		}
	}
	return g
}

// Invoke 调用模型并返回原始文本。
// 任何失败都记录日志与指标后返回兜底文本，不向调用方抛错。
func (g *Gateway) Invoke(ctx context.Context, prompt string) string {
	start := time.Now()

	chatModel, err := g.factory.Default(ctx)
	if err != nil {
		return g.degrade(ctx, "client_init", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := chatModel.Generate(callCtx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	metrics.LLMCallDuration.WithLabelValues(g.provider, g.model).Observe(time.Since(start).Seconds())
	if err != nil {
		return g.degrade(ctx, "generate", err)
	}
	if out == nil || out.Content == "" {
		return g.degrade(ctx, "empty_content", nil)
	}

	g.recordUsage(out)
	metrics.LLMCallTotal.WithLabelValues(g.provider, g.model, "success").Inc()
	logger.Debug(ctx, "model call completed",
		"provider", g.provider,
		"model", g.model,
		"duration_ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	)
	return out.Content
}

func (g *Gateway) degrade(ctx context.Context, stage string, err error) string {
	metrics.LLMCallTotal.WithLabelValues(g.provider, g.model, "error").Inc()
	metrics.FallbackSubstitutionsTotal.WithLabelValues("gateway_error").Inc()
	logger.Error(ctx, "model call failed, degrading to fallback blueprint", err,
		"provider", g.provider,
		"model", g.model,
		"stage", stage,
	)
	return design.FallbackRaw()
}

func (g *Gateway) recordUsage(out *schema.Message) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	metrics.LLMTokensUsed.WithLabelValues(g.provider, g.model, "prompt").
		Add(float64(usage.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(g.provider, g.model, "completion").
		Add(float64(usage.CompletionTokens))
}
