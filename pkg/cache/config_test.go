package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := defaultConfig()

	assert.Zero(t, cfg.MaxCapacity(), "默认不限容量")
	assert.Zero(t, cfg.DefaultTTL(), "默认不过期")
	assert.Equal(t, DefaultCleanupInterval, cfg.CleanupInterval())
	assert.False(t, cfg.BackgroundCleanup(), "默认不启动后台清理")
}

func TestConfig_Options(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{
		WithMaxCapacity(100),
		WithDefaultTTL(time.Minute),
		WithCleanupInterval(10 * time.Second),
		WithBackgroundCleanup(true),
	} {
		opt(cfg)
	}

	assert.Equal(t, 100, cfg.MaxCapacity())
	assert.Equal(t, time.Minute, cfg.DefaultTTL())
	assert.Equal(t, 10*time.Second, cfg.CleanupInterval())
	assert.True(t, cfg.BackgroundCleanup())
}

func TestConfig_NegativeValuesClamped(t *testing.T) {
	cfg := defaultConfig()
	WithMaxCapacity(-1)(cfg)
	WithDefaultTTL(-time.Second)(cfg)
	WithCleanupInterval(-time.Second)(cfg)

	assert.Zero(t, cfg.MaxCapacity())
	assert.Zero(t, cfg.DefaultTTL())
	assert.Zero(t, cfg.CleanupInterval())
}
