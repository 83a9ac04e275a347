// Package memory 提供进程内的会话存储实现，用于开发与测试环境
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"blueprint-ai-api/internal/domain/entity"
	"blueprint-ai-api/internal/domain/repository"
)

// SessionStore 进程内会话存储。
// 存取都走 JSON 深拷贝，调用方持有的对象与存储内部状态互不影响。
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.DesignSession
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// NewSessionStore 创建进程内会话存储
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entity.DesignSession),
	}
}

// Get 按 ID 读取会话，不存在时返回 (nil, nil)
func (s *SessionStore) Get(_ context.Context, sessionID string) (*entity.DesignSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return cloneSession(session)
}

// Save 整体覆盖写入会话
func (s *SessionStore) Save(_ context.Context, session *entity.DesignSession) error {
	clone, err := cloneSession(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[session.ID] = clone
	s.mu.Unlock()
	return nil
}

func cloneSession(session *entity.DesignSession) (*entity.DesignSession, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	var out entity.DesignSession
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &out, nil
}
