// Package repository 定义领域仓储接口
package repository

import (
	"context"

	"blueprint-ai-api/internal/domain/entity"
)

// SessionRepository 按会话 ID 存取完整的设计历史。
// Get 在会话不存在时返回 (nil, nil)；Save 整体覆盖写入。
// 仓储本身不做并发控制，读-改-写的串行化由应用层的按键锁保证。
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*entity.DesignSession, error)
	Save(ctx context.Context, session *entity.DesignSession) error
}
