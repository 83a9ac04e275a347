package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_HOST", "redis.internal")

	assert.Equal(t, "redis.internal", expandEnv("${TEST_HOST}"))
	assert.Equal(t, "redis.internal", expandEnv("${TEST_HOST:fallback}"))
	assert.Equal(t, "fallback", expandEnv("${TEST_MISSING:fallback}"))
	// 无默认值且未定义时原样保留
	assert.Equal(t, "${TEST_MISSING}", expandEnv("${TEST_MISSING}"))
	assert.Equal(t, "host: redis.internal port: 6379", expandEnv("host: ${TEST_HOST} port: ${TEST_PORT:6379}"))
}

func TestLoadDefaults(t *testing.T) {
	// 无配置文件时全部走默认值
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "blueprint-ai-api", cfg.App.Name)
	assert.Equal(t, 8000, cfg.Server.HTTP.Port)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, "blueprint:session", cfg.Session.KeyPrefix)
	assert.Equal(t, "gemini", cfg.LLM.DefaultProvider)
	assert.True(t, cfg.Observability.Metrics.Enabled)
	assert.False(t, cfg.Security.RateLimit.Enabled)
}
