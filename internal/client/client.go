package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/avast/retry-go/v5"

	"github.com/omeyang/xkv/internal/proto"
)

// 客户端默认参数。
const (
	// DefaultAddr 默认服务端地址。
	DefaultAddr = "127.0.0.1:3000"

	// DefaultTimeout 单次操作的整体超时。
	DefaultTimeout = 5 * time.Second

	// DefaultRetries 连接失败的最大尝试次数。
	DefaultRetries = 3

	retryDelay = 100 * time.Millisecond
)

// Client 行协议客户端。零值不可用，使用 [New] 创建。
type Client struct {
	addr    string
	timeout time.Duration
	retries int
}

// Option 定义配置客户端的函数类型。
type Option func(*Client)

// WithAddr 设置服务端地址。
func WithAddr(addr string) Option {
	return func(c *Client) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeout 设置单次操作的整体超时。
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries 设置连接失败的最大尝试次数。
func WithRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.retries = n
		}
	}
}

// New 创建客户端。
func New(opts ...Option) *Client {
	c := &Client{
		addr:    DefaultAddr,
		timeout: DefaultTimeout,
		retries: DefaultRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Addr 返回配置的服务端地址。
func (c *Client) Addr() string { return c.addr }

// roundTrip 执行一轮请求：拨号（带重试）、写请求、读到 EOF。
func (c *Client) roundTrip(ctx context.Context, request string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := retry.NewWithData[net.Conn](
		retry.Context(ctx),
		retry.Attempts(uint(c.retries)),
		retry.Delay(retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	).Do(func() (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", c.addr)
	})
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrConnect, c.addr, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", fmt.Errorf("client: set deadline: %w", err)
		}
	}

	if _, err := conn.Write([]byte(request)); err != nil {
		return "", fmt.Errorf("client: write request: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		// 半关闭写端，告知服务端本轮请求已发完。
		_ = tc.CloseWrite()
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("client: read response: %w", err)
	}
	return string(resp), nil
}

// do 执行请求并把 ERR 响应转换为错误。
func (c *Client) do(ctx context.Context, request string) (string, error) {
	resp, err := c.roundTrip(ctx, request)
	if err != nil {
		return "", err
	}
	if proto.IsError(resp) {
		return "", fmt.Errorf("%w: %s", ErrServer, proto.ErrorMessage(resp))
	}
	return resp, nil
}

// Get 读取 key 对应的值。key 不存在时返回 found=false。
func (c *Client) Get(ctx context.Context, key string) (value string, found bool, err error) {
	resp, err := c.do(ctx, "get "+key)
	if err != nil {
		return "", false, err
	}
	if resp == proto.RespNotFound {
		return "", false, nil
	}
	return resp, true, nil
}

// Set 写入键值对。返回 replaced=true 表示覆盖了已有 key。
func (c *Client) Set(ctx context.Context, key, value string) (replaced bool, err error) {
	resp, err := c.do(ctx, fmt.Sprintf("set %s %s", key, value))
	if err != nil {
		return false, err
	}
	return resp == proto.RespReplaced, nil
}

// Delete 删除 key。返回 found=false 表示 key 不存在。
func (c *Client) Delete(ctx context.Context, key string) (found bool, err error) {
	resp, err := c.do(ctx, "delete "+key)
	if err != nil {
		return false, err
	}
	return resp == proto.RespOK, nil
}

// Ping 探测服务端存活。
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "ping")
	if err != nil {
		return err
	}
	if resp != proto.RespPong {
		return fmt.Errorf("client: unexpected ping response %q", resp)
	}
	return nil
}

// StatsLine 返回服务端的原始统计行。
func (c *Client) StatsLine(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, "stats")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}
