// xkvctl 是 xkv 缓存服务的命令行客户端。
//
// 用法:
//
//	xkvctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-a, --addr     服务端地址 (默认: 127.0.0.1:3000)
//	-t, --timeout  单次操作超时 (默认: 5s)
//	-r, --retries  连接重试次数 (默认: 3)
//
// 命令:
//
//	get <key>          读取 key 对应的值
//	set <key> <value>  写入键值对
//	delete <key>       删除 key
//	ping               探测服务端存活
//	stats              查看缓存统计
//
// 退出码:
//
//	0: 命令执行成功
//	1: 连接失败或服务端返回错误
//	2: 参数错误（缺少参数、未知命令等）
//
// 示例:
//
//	xkvctl set name alice
//	xkvctl get name
//	xkvctl -a 10.0.0.5:3000 stats
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xkv/internal/client"
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
		Name:    "xkvctl",
		Usage:   "xkv 缓存服务命令行客户端",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "服务端地址",
				Value:   client.DefaultAddr,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "单次操作超时",
				Value:   client.DefaultTimeout,
			},
			&cli.IntFlag{
				Name:    "retries",
				Aliases: []string{"r"},
				Usage:   "连接重试次数",
				Value:   client.DefaultRetries,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.msg)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情，此处仅设置退出码。
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
