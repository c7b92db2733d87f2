package conf

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// 服务端默认值。
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 3000
	DefaultMaxCapacity     = 10000
	DefaultCleanupInterval = time.Minute
)

// ServerConfig 是服务端进程的完整配置。
type ServerConfig struct {
	// Host 监听地址。
	Host string `koanf:"host"`

	// Port 监听端口。
	Port int `koanf:"port"`

	// MaxCapacity 缓存最大条目数，0 表示不限容量。
	MaxCapacity int `koanf:"max_capacity"`

	// DefaultTTL 条目默认存活时间，0 表示默认不过期。
	DefaultTTL time.Duration `koanf:"default_ttl"`

	// CleanupInterval 后台清理间隔。
	CleanupInterval time.Duration `koanf:"cleanup_interval"`

	// BackgroundCleanup 是否启用后台过期清理。
	BackgroundCleanup bool `koanf:"background_cleanup"`

	// Log 日志配置。
	Log LogConfig `koanf:"log"`
}

// LogConfig 日志输出配置。
type LogConfig struct {
	// Level 日志级别：debug/info/warn/error。
	Level string `koanf:"level"`

	// Format 输出格式：text 或 json。
	Format string `koanf:"format"`

	// File 日志文件路径，为空时输出到标准错误。
	File string `koanf:"file"`

	// MaxSizeMB 单个日志文件的大小上限（MB），超过后轮转。
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups 保留的轮转文件数。
	MaxBackups int `koanf:"max_backups"`

	// MaxAgeDays 轮转文件的保留天数。
	MaxAgeDays int `koanf:"max_age_days"`
}

// Default 返回内置默认配置。
func Default() *ServerConfig {
	return &ServerConfig{
		Host:            DefaultHost,
		Port:            DefaultPort,
		MaxCapacity:     DefaultMaxCapacity,
		CleanupInterval: DefaultCleanupInterval,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Addr 返回 host:port 形式的监听地址。
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate 校验配置取值。
func (c *ServerConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.MaxCapacity < 0 {
		return fmt.Errorf("%w: negative max_capacity %d", ErrInvalidConfig, c.MaxCapacity)
	}
	if c.DefaultTTL < 0 {
		return fmt.Errorf("%w: negative default_ttl %s", ErrInvalidConfig, c.DefaultTTL)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("%w: negative cleanup_interval %s", ErrInvalidConfig, c.CleanupInterval)
	}
	return nil
}
