package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xkv/internal/client"
)

// usageError 表示参数错误，run 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// clientFromFlags 根据全局选项构建客户端。
func clientFromFlags(cmd *cli.Command) *client.Client {
	return client.New(
		client.WithAddr(cmd.String("addr")),
		client.WithTimeout(cmd.Duration("timeout")),
		client.WithRetries(cmd.Int("retries")),
	)
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createGetCommand(),
		createSetCommand(),
		createDeleteCommand(),
		createPingCommand(),
		createStatsCommand(),
	}
}

func createGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "读取 key 对应的值",
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return &usageError{msg: "get 需要 <key> 参数"}
			}
			return cmdGet(ctx, clientFromFlags(cmd), cmd.Args().First())
		},
	}
}

func createSetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Aliases:   []string{"s"},
		Usage:     "写入键值对",
		ArgsUsage: "<key> <value>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return &usageError{msg: "set 需要 <key> <value> 参数"}
			}
			return cmdSet(ctx, clientFromFlags(cmd), cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

func createDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"del", "d"},
		Usage:     "删除 key",
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return &usageError{msg: "delete 需要 <key> 参数"}
			}
			return cmdDelete(ctx, clientFromFlags(cmd), cmd.Args().First())
		},
	}
}

func createPingCommand() *cli.Command {
	return &cli.Command{
		Name:   "ping",
		Usage:  "探测服务端存活",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdPing(ctx, clientFromFlags(cmd))
		},
	}
}

func createStatsCommand() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"info"},
		Usage:   "查看缓存统计",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdStats(ctx, clientFromFlags(cmd))
		},
	}
}

func cmdGet(ctx context.Context, c *client.Client, key string) error {
	value, found, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("Key '%s' not found\n", key)
		return nil
	}
	fmt.Println(value)
	return nil
}

func cmdSet(ctx context.Context, c *client.Client, key, value string) error {
	replaced, err := c.Set(ctx, key, value)
	if err != nil {
		return err
	}
	if replaced {
		fmt.Printf("Updated key '%s'\n", key)
	} else {
		fmt.Printf("Set key '%s'\n", key)
	}
	return nil
}

func cmdDelete(ctx context.Context, c *client.Client, key string) error {
	found, err := c.Delete(ctx, key)
	if err != nil {
		return err
	}
	if found {
		fmt.Printf("Deleted key '%s'\n", key)
	} else {
		fmt.Printf("Key '%s' not found\n", key)
	}
	return nil
}

func cmdPing(ctx context.Context, c *client.Client) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}
	fmt.Println("PONG")
	return nil
}

func cmdStats(ctx context.Context, c *client.Client) error {
	line, err := c.StatsLine(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Cache Statistics:")
	for _, field := range strings.Fields(line) {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}
		fmt.Printf("  %s: %s\n", key, value)
	}
	return nil
}
