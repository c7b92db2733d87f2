package server

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/omeyang/xkv/internal/proto"
)

// dispatch 解析一轮请求并返回响应体。
func (s *Server) dispatch(log *slog.Logger, raw []byte) string {
	tokens := proto.Fields(raw)
	if len(tokens) == 0 {
		return proto.FormatError("empty command")
	}

	cmd := proto.ParseCommand(tokens[0])
	args := tokens[1:]
	log.Debug("dispatch", "command", tokens[0], "args", len(args))

	switch cmd {
	case proto.CmdGet:
		return s.handleGet(args)
	case proto.CmdSet:
		return s.handleSet(args)
	case proto.CmdDelete:
		return s.handleDelete(args)
	case proto.CmdPing:
		return proto.RespPong
	case proto.CmdStats:
		return s.handleStats()
	default:
		return proto.FormatErrorf("unknown command '%s'", tokens[0])
	}
}

func (s *Server) handleGet(args []string) string {
	if len(args) < 1 {
		return proto.FormatError("missing key argument")
	}

	val, ok := s.cache.Get(args[0])
	if !ok {
		return proto.RespNotFound
	}
	// 行协议只能传文本，非 UTF-8 值退化为占位说明。
	if !utf8.Valid(val) {
		return fmt.Sprintf("(binary data: %d bytes)", len(val))
	}
	return string(val)
}

func (s *Server) handleSet(args []string) string {
	if len(args) < 2 {
		return proto.FormatError("missing key or value argument")
	}

	key, value := args[0], args[1]
	replaced := s.cache.Contains(key)
	s.cache.Set(key, []byte(value))
	if replaced {
		return proto.RespReplaced
	}
	return proto.RespOK
}

func (s *Server) handleDelete(args []string) string {
	if len(args) < 1 {
		return proto.FormatError("missing key argument")
	}

	if s.cache.Delete(args[0]) {
		return proto.RespOK
	}
	return proto.RespNotFound
}

func (s *Server) handleStats() string {
	snap := s.cache.Snapshot()
	return proto.FormatStats(snap.Hits, snap.Misses, snap.Size, snap.HitRate)
}
