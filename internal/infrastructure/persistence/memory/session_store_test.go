package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-ai-api/internal/domain/entity"
)

func TestSessionStoreGetMissing(t *testing.T) {
	store := NewSessionStore()

	session, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStoreSaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	s.Append(entity.DesignVersion{Version: 1, Feedback: entity.FeedbackInitialGeneration})
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.ID)
	require.Len(t, got.Versions, 1)
	assert.Equal(t, entity.FeedbackInitialGeneration, got.Versions[0].Feedback)
}

func TestSessionStoreIsolation(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	s.Append(entity.DesignVersion{Version: 1, Feedback: "original"})
	require.NoError(t, store.Save(ctx, s))

	// 保存后修改调用方的对象不影响存储内容
	s.Versions[0].Feedback = "mutated"

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Versions[0].Feedback)

	// 读取返回的对象同样与存储隔离
	got.Versions[0].Feedback = "mutated again"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Versions[0].Feedback)
}

func TestSessionStoreOverwrite(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	s.Append(entity.DesignVersion{Version: 1})
	require.NoError(t, store.Save(ctx, s))

	s.Append(entity.DesignVersion{Version: 2})
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Versions, 2)
}
