package design

import (
	"context"
	"strings"
	"time"

	"blueprint-ai-api/internal/domain/entity"
)

// ModelGateway 生成式模型网关。
// Invoke 返回模型原始文本；网关内部吞掉所有失败并返回兜底蓝图文本，
// 因此调用方拿到的字符串永远非空。
type ModelGateway interface {
	Invoke(ctx context.Context, prompt string) string
}

// Engine 无状态的蓝图生成引擎。
// 引擎只负责 提示词 -> 模型 -> 提取 -> 归一化 这一条流水线，
// 会话历史由调用方显式传入传出，引擎自身不持有任何会话状态。
type Engine struct {
	gateway ModelGateway
}

// NewEngine 创建蓝图生成引擎
func NewEngine(gateway ModelGateway) *Engine {
	return &Engine{gateway: gateway}
}

// GenerateInitial 根据建筑需求生成首版蓝图快照
func (e *Engine) GenerateInitial(ctx context.Context, req *entity.BuildingRequirements, version int) entity.DesignVersion {
	prompt := InitialPrompt(req)
	bp := e.produce(ctx, prompt, req)

	return entity.DesignVersion{
		Version:      version,
		Blueprint:    bp,
		Feedback:     entity.FeedbackInitialGeneration,
		Timestamp:    time.Now().UTC(),
		ChangesMade:  []string{entity.ChangeInitialCreation},
		CurrentFloor: 1,
	}
}

// Iterate 基于当前蓝图与用户反馈生成下一版快照
func (e *Engine) Iterate(ctx context.Context, current *entity.Blueprint, feedback string, version, currentFloor int) entity.DesignVersion {
	prompt := IterationPrompt(current, feedback)
	bp := e.produce(ctx, prompt, nil)

	return entity.DesignVersion{
		Version:      version,
		Blueprint:    bp,
		Feedback:     feedback,
		Timestamp:    time.Now().UTC(),
		ChangesMade:  []string{entity.ChangeUserFeedbackIntegration},
		CurrentFloor: currentFloor,
	}
}

// Optimize 按优化目标生成下一版快照。
// 快照的 feedback 字段记录为 "Optimization for: goal1, goal2" 的形式。
func (e *Engine) Optimize(ctx context.Context, current *entity.Blueprint, goals []string, version, currentFloor int) entity.DesignVersion {
	prompt := OptimizationPrompt(current, goals)
	bp := e.produce(ctx, prompt, nil)

	return entity.DesignVersion{
		Version:      version,
		Blueprint:    bp,
		Feedback:     "Optimization for: " + strings.Join(goals, ", "),
		Timestamp:    time.Now().UTC(),
		ChangesMade:  []string{entity.ChangeDesignOptimization},
		CurrentFloor: currentFloor,
	}
}

func (e *Engine) produce(ctx context.Context, prompt string, req *entity.BuildingRequirements) *entity.Blueprint {
	raw := e.gateway.Invoke(ctx, prompt)
	bp := ExtractBlueprint(ctx, raw)
	Normalize(bp, req)
	return bp
}
