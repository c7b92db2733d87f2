package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xkv/pkg/cache"
)

// 连接处理默认参数。
const (
	// DefaultReadTimeout 单个连接的读超时。
	DefaultReadTimeout = 5 * time.Second

	// DefaultMaxConns 同时处理的连接数上限。
	DefaultMaxConns = 256

	// requestBufSize 单轮请求的读缓冲大小。
	// 行协议无长度前缀，以单次 Read 的返回为一轮请求。
	requestBufSize = 4096
)

// Config 服务端配置。
type Config struct {
	// Addr 监听地址，host:port 形式。
	Addr string

	// ReadTimeout 单连接读超时，0 使用默认值。
	ReadTimeout time.Duration

	// MaxConns 并发连接上限，0 使用默认值。
	MaxConns int
}

// Server TCP 服务端，持有缓存句柄并按行协议应答。
type Server struct {
	cfg   Config
	cache *cache.Cache
	log   *slog.Logger
	lis   net.Listener
}

// New 创建服务端实例。cache 与 log 不得为 nil。
func New(cfg Config, c *cache.Cache, log *slog.Logger) (*Server, error) {
	if c == nil {
		return nil, errors.New("server: nil cache")
	}
	if log == nil {
		return nil, errors.New("server: nil logger")
	}
	if cfg.Addr == "" {
		return nil, errors.New("server: empty listen address")
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = DefaultMaxConns
	}
	return &Server{cfg: cfg, cache: c, log: log}, nil
}

// Listen 绑定监听地址。与 Serve 分离以便调用方在启动日志里
// 输出实际地址（如端口为 0 时由内核分配的端口）。
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	s.lis = lis
	return nil
}

// Addr 返回实际监听地址。必须在 Listen 成功之后调用。
func (s *Server) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

// Serve 运行接受循环直到 ctx 取消，返回前等待在途连接处理完毕。
// 必须在 Listen 成功之后调用。
func (s *Server) Serve(ctx context.Context) error {
	if s.lis == nil {
		return errors.New("server: Serve called before Listen")
	}

	// ctx 取消时关闭监听器，解除 Accept 阻塞。
	stop := context.AfterFunc(ctx, func() {
		_ = s.lis.Close()
	})
	defer stop()
	defer func() { _ = s.lis.Close() }()

	var group errgroup.Group
	group.SetLimit(s.cfg.MaxConns)

	for {
		conn, err := s.lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Warn("accept failed", "error", err)
			continue
		}
		group.Go(func() error {
			s.handleConn(conn)
			return nil
		})
	}

	_ = group.Wait()

	snap := s.cache.Snapshot()
	s.log.Info("server stopped",
		"hits", snap.Hits,
		"misses", snap.Misses,
		"size", snap.Size,
		"hit_rate", fmt.Sprintf("%.1f%%", snap.HitRate),
	)
	return ctx.Err()
}

// Run 是 Listen + Serve 的便捷组合。
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.log.Info("server listening", "addr", s.Addr().String())
	return s.Serve(ctx)
}

// handleConn 处理一轮请求：读一次、分发、写一次、关闭。
func (s *Server) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	connID := uuid.NewString()
	log := s.log.With("conn_id", connID, "remote", conn.RemoteAddr().String())

	if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
		log.Warn("set read deadline failed", "error", err)
		return
	}

	buf := make([]byte, requestBufSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Warn("read request failed", "error", err)
		return
	}

	resp := s.dispatch(log, buf[:n])
	if _, err := conn.Write([]byte(resp)); err != nil {
		log.Warn("write response failed", "error", err)
	}
}
