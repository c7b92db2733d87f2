// xkvd 是 xkv 缓存服务的服务端进程。
//
// 用法:
//
//	xkvd [选项]
//
// 选项:
//
//	-c, --config              配置文件路径 (.yaml/.yml/.json)
//	    --host                监听地址 (默认: 127.0.0.1)
//	    --port                监听端口 (默认: 3000)
//	    --max-capacity        缓存最大条目数，0 表示不限 (默认: 10000)
//	    --default-ttl         条目默认存活时间，0 表示不过期
//	    --cleanup-interval    后台清理间隔 (默认: 1m)
//	    --background-cleanup  启用后台过期清理
//	    --log-level           日志级别 debug/info/warn/error (默认: info)
//	    --log-format          日志格式 text/json (默认: text)
//	    --log-file            日志文件路径，为空输出到标准错误
//
// 配置优先级（由低到高）：内置默认值 → 配置文件 → 命令行参数。
//
// 收到 SIGINT/SIGTERM 后停止接受新连接，等待在途连接处理完毕，
// 并在退出前输出一次统计汇总。
//
// 示例:
//
//	xkvd --port 4000 --max-capacity 50000
//	xkvd -c /etc/xkv/server.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xkv/internal/conf"
	"github.com/omeyang/xkv/internal/logx"
	"github.com/omeyang/xkv/internal/server"
	"github.com/omeyang/xkv/pkg/cache"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xkvd",
		Usage:   "xkv 缓存服务端",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "监听地址",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "监听端口",
			},
			&cli.IntFlag{
				Name:  "max-capacity",
				Usage: "缓存最大条目数，0 表示不限",
			},
			&cli.DurationFlag{
				Name:  "default-ttl",
				Usage: "条目默认存活时间，0 表示不过期",
			},
			&cli.DurationFlag{
				Name:  "cleanup-interval",
				Usage: "后台清理间隔",
			},
			&cli.BoolFlag{
				Name:  "background-cleanup",
				Usage: "启用后台过期清理",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径，为空输出到标准错误",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return serve(ctx, cfg)
		},
	}
}

// resolveConfig 按优先级合并配置：默认值 → 配置文件 → 命令行参数。
func resolveConfig(cmd *cli.Command) (*conf.ServerConfig, error) {
	cfg := conf.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := conf.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if cmd.IsSet("max-capacity") {
		cfg.MaxCapacity = cmd.Int("max-capacity")
	}
	if cmd.IsSet("default-ttl") {
		cfg.DefaultTTL = cmd.Duration("default-ttl")
	}
	if cmd.IsSet("cleanup-interval") {
		cfg.CleanupInterval = cmd.Duration("cleanup-interval")
	}
	if cmd.IsSet("background-cleanup") {
		cfg.BackgroundCleanup = cmd.Bool("background-cleanup")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// serve 组装依赖并运行服务端，直到 ctx 取消。
func serve(ctx context.Context, cfg *conf.ServerConfig) error {
	builder := logx.New().
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format)
	if cfg.Log.File != "" {
		builder.SetRotation(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	}
	log, cleanup, err := builder.Build()
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	c, err := cache.New(
		cache.WithMaxCapacity(cfg.MaxCapacity),
		cache.WithDefaultTTL(cfg.DefaultTTL),
		cache.WithCleanupInterval(cfg.CleanupInterval),
		cache.WithBackgroundCleanup(cfg.BackgroundCleanup),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	srv, err := server.New(server.Config{Addr: cfg.Addr()}, c, log)
	if err != nil {
		return err
	}

	log.Info("starting xkvd",
		"version", Version,
		"addr", cfg.Addr(),
		"max_capacity", cfg.MaxCapacity,
		"default_ttl", cfg.DefaultTTL.String(),
		"background_cleanup", cfg.BackgroundCleanup,
	)

	err = srv.Run(ctx)
	if errors.Is(err, context.Canceled) {
		// 信号触发的正常退出。
		return nil
	}
	return err
}

func run() int {
	app := createApp()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
