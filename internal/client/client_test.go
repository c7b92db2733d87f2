package client

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xkv/internal/server"
	"github.com/omeyang/xkv/pkg/cache"
)

func startTestServer(t *testing.T) string {
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

	return srv.Addr().String()
}

func TestClient_SetGetDelete(t *testing.T) {
	addr := startTestServer(t)
	c := New(WithAddr(addr))
	ctx := context.Background()

	replaced, err := c.Set(ctx, "name", "alice")
	require.NoError(t, err)
	assert.False(t, replaced)

	replaced, err = c.Set(ctx, "name", "bob")
	require.NoError(t, err)
	assert.True(t, replaced, "覆盖已有 key")

	val, found, err := c.Get(ctx, "name")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bob", val)

	found, err = c.Delete(ctx, "name")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = c.Delete(ctx, "name")
	require.NoError(t, err)
	assert.False(t, found, "重复删除")

	_, found, err = c.Get(ctx, "name")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_Ping(t *testing.T) {
	addr := startTestServer(t)
	require.NoError(t, New(WithAddr(addr)).Ping(context.Background()))
}

func TestClient_StatsLine(t *testing.T) {
	addr := startTestServer(t)
	c := New(WithAddr(addr))
	ctx := context.Background()

	_, err := c.Set(ctx, "k", "v")
	require.NoError(t, err)
	_, _, err = c.Get(ctx, "k")
	require.NoError(t, err)

	line, err := c.StatsLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hits:1 misses:0 size:1 hit_rate:100.0%", line)
}

func TestClient_ConnectFailure(t *testing.T) {
	// 不可路由端口：重试耗尽后返回 ErrConnect。
	c := New(
		WithAddr("127.0.0.1:1"),
		WithTimeout(2*time.Second),
		WithRetries(2),
	)
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrConnect)
}

func TestClient_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultAddr, c.Addr())

	c = New(WithAddr(""), WithTimeout(-time.Second), WithRetries(0))
	assert.Equal(t, DefaultAddr, c.Addr(), "非法选项值被忽略")
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, DefaultRetries, c.retries)
}
