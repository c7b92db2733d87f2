package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xkv/internal/client"
	"github.com/omeyang/xkv/internal/server"
	"github.com/omeyang/xkv/pkg/cache"
)

func startTestServer(t *testing.T) *client.Client {
	t.Helper()

	c, err := cache.New(cache.WithMaxCapacity(100))
	require.NoError(t, err)
	t.Cleanup(c.Close)

	srv, err := server.New(server.Config{Addr: "127.0.0.1:0"}, c, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return client.New(client.WithAddr(srv.Addr().String()))
}

// captureStdout 捕获 fn 执行期间写入标准输出的内容。
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), fnErr
}

func TestCmdSetGet(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	out, err := captureStdout(t, func() error { return cmdSet(ctx, c, "name", "alice") })
	require.NoError(t, err)
	assert.Equal(t, "Set key 'name'\n", out)

	out, err = captureStdout(t, func() error { return cmdSet(ctx, c, "name", "bob") })
	require.NoError(t, err)
	assert.Equal(t, "Updated key 'name'\n", out)

	out, err = captureStdout(t, func() error { return cmdGet(ctx, c, "name") })
	require.NoError(t, err)
	assert.Equal(t, "bob\n", out)

	out, err = captureStdout(t, func() error { return cmdGet(ctx, c, "missing") })
	require.NoError(t, err)
	assert.Equal(t, "Key 'missing' not found\n", out)
}

func TestCmdDelete(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	_, err := captureStdout(t, func() error { return cmdSet(ctx, c, "k", "v") })
	require.NoError(t, err)

	out, err := captureStdout(t, func() error { return cmdDelete(ctx, c, "k") })
	require.NoError(t, err)
	assert.Equal(t, "Deleted key 'k'\n", out)

	out, err = captureStdout(t, func() error { return cmdDelete(ctx, c, "k") })
	require.NoError(t, err)
	assert.Equal(t, "Key 'k' not found\n", out)
}

func TestCmdPing(t *testing.T) {
	c := startTestServer(t)

	out, err := captureStdout(t, func() error { return cmdPing(context.Background(), c) })
	require.NoError(t, err)
	assert.Equal(t, "PONG\n", out)
}

func TestCmdStats(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	_, err := captureStdout(t, func() error { return cmdSet(ctx, c, "k", "v") })
	require.NoError(t, err)
	_, err = captureStdout(t, func() error { return cmdGet(ctx, c, "k") })
	require.NoError(t, err)

	out, err := captureStdout(t, func() error { return cmdStats(ctx, c) })
	require.NoError(t, err)
	assert.Equal(t,
		"Cache Statistics:\n  hits: 1\n  misses: 0\n  size: 1\n  hit_rate: 100.0%\n",
		out)
}

func TestCmdFailure(t *testing.T) {
	// 无服务端：连接失败向上抛错，由 run 映射为退出码 1。
	c := client.New(client.WithAddr("127.0.0.1:1"), client.WithRetries(1))
	err := cmdPing(context.Background(), c)
	require.ErrorIs(t, err, client.ErrConnect)
}

func TestRun_UsageError(t *testing.T) {
	app := createApp()
	err := app.Run(context.Background(), []string{"xkvctl", "get"})
	var usageErr *usageError
	require.ErrorAs(t, err, &usageErr)
}
