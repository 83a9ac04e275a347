package design

import (
	"context"
	"encoding/json"
	"strings"

	"blueprint-ai-api/internal/domain/entity"
	"blueprint-ai-api/pkg/logger"
	"blueprint-ai-api/pkg/metrics"
)

// 降级原因标签，与 Prometheus 指标的 reason 取值一一对应
const (
	fallbackReasonGatewayError    = "gateway_error"
	fallbackReasonEmptyResponse   = "empty_response"
	fallbackReasonParseError      = "parse_error"
	fallbackReasonValidationError = "validation_error"
)

// ExtractBlueprint 从模型原始输出中提取蓝图。
// 先剥离 Markdown 代码围栏，再做严格解码与结构校验；
// 任何一步失败都替换为兜底蓝图并上报降级指标，永不向上层返回错误。
func ExtractBlueprint(ctx context.Context, raw string) *entity.Blueprint {
	if strings.TrimSpace(raw) == "" {
		return substituteFallback(ctx, fallbackReasonEmptyResponse, "model returned empty text")
	}

	payload := stripCodeFence(raw)

	var bp entity.Blueprint
	if err := json.Unmarshal([]byte(payload), &bp); err != nil {
		return substituteFallback(ctx, fallbackReasonParseError, err.Error())
	}
	if err := bp.Validate(); err != nil {
		return substituteFallback(ctx, fallbackReasonValidationError, err.Error())
	}
	return &bp
}

// stripCodeFence 剥离模型惯用的 ```json ... ``` 包裹。
// 优先识别 json 标注的围栏，其次是裸围栏，都没有时返回全文。
func stripCodeFence(raw string) string {
	text := raw

	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
	} else {
		return strings.TrimSpace(text)
	}

	if end := strings.Index(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

func substituteFallback(ctx context.Context, reason, detail string) *entity.Blueprint {
	metrics.FallbackSubstitutionsTotal.WithLabelValues(reason).Inc()
	logger.Warn(ctx, "substituting fallback blueprint",
		"reason", reason,
		"detail", detail,
	)
	return FallbackBlueprint()
}
