package cache

import "time"

// DefaultCleanupInterval 后台清理的默认执行间隔。
// 注意：默认配置下后台清理本身是关闭的，该间隔在
// WithBackgroundCleanup(true) 之前不产生任何效果。
const DefaultCleanupInterval = time.Minute

// Config 是缓存实例的配置，在引擎构造时固定，之后不再修改。
type Config struct {
	maxCapacity       int           // 0 表示不限容量
	defaultTTL        time.Duration // 0 表示默认不过期
	cleanupInterval   time.Duration // 0 表示禁用后台清理
	backgroundCleanup bool
}

// Option 定义配置缓存的函数类型。
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		cleanupInterval: DefaultCleanupInterval,
	}
}

// WithMaxCapacity 设置最大条目数。
// 达到容量后插入新 key 会从队首淘汰最久未访问的条目。
// n <= 0 表示不限容量（生产环境不建议）。
func WithMaxCapacity(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.maxCapacity = n
	}
}

// WithDefaultTTL 设置默认 TTL：Set 未显式指定 TTL 时使用该值。
// d <= 0 表示默认不过期。
func WithDefaultTTL(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.defaultTTL = d
	}
}

// WithCleanupInterval 设置后台清理间隔。d <= 0 表示禁用后台清理。
// 只有同时 WithBackgroundCleanup(true) 时该间隔才会生效。
func WithCleanupInterval(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.cleanupInterval = d
	}
}

// WithBackgroundCleanup 开启或关闭后台清理任务。
// 开启后会按 cleanupInterval 周期性移除已过期条目；
// 关闭时只依赖惰性过期（条目在被访问时回收）。
func WithBackgroundCleanup(enabled bool) Option {
	return func(c *Config) {
		c.backgroundCleanup = enabled
	}
}

// MaxCapacity 返回最大条目数，0 表示不限容量。
func (c *Config) MaxCapacity() int { return c.maxCapacity }

// DefaultTTL 返回默认 TTL，0 表示默认不过期。
func (c *Config) DefaultTTL() time.Duration { return c.defaultTTL }

// CleanupInterval 返回后台清理间隔，0 表示禁用。
func (c *Config) CleanupInterval() time.Duration { return c.cleanupInterval }

// BackgroundCleanup 返回后台清理是否开启。
func (c *Config) BackgroundCleanup() bool { return c.backgroundCleanup }
