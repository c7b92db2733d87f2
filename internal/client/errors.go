package client

import "errors"

var (
	// ErrConnect 表示连接服务端失败（重试耗尽）。
	ErrConnect = errors.New("client: failed to connect to server")

	// ErrServer 表示服务端返回了 ERR 响应。
	ErrServer = errors.New("client: server error")
)
