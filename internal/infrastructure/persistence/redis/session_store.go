package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blueprint-ai-api/internal/domain/entity"
	"blueprint-ai-api/internal/domain/repository"
)

// SessionStore Redis 会话存储。
// 每个会话序列化为一个 JSON 值，键为 <prefix>:<session_id>，
// 写入时刷新 TTL，读取不续期。
type SessionStore struct {
	client    *Client
	keyPrefix string
	ttl       time.Duration
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// NewSessionStore 创建 Redis 会话存储
func NewSessionStore(client *Client, keyPrefix string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get 按 ID 读取会话，不存在时返回 (nil, nil)
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*entity.DesignSession, error) {
	key := s.key(sessionID)
	ctx, span := tracer.Start(ctx, "redis.SessionStore.Get",
		trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	data, err := s.client.Redis().Get(ctx, key).Bytes()
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	var session entity.DesignSession
	if err := json.Unmarshal(data, &session); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

// Save 整体覆盖写入会话并刷新 TTL
func (s *SessionStore) Save(ctx context.Context, session *entity.DesignSession) error {
	key := s.key(session.ID)
	ctx, span := tracer.Start(ctx, "redis.SessionStore.Save",
		trace.WithAttributes(
			attribute.String("session.id", session.ID),
			attribute.Int("session.versions", len(session.Versions)),
		))
	defer span.End()

	data, err := json.Marshal(session)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	if err := s.client.Redis().Set(ctx, key, data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return s.keyPrefix + ":" + sessionID
}
