package proto

import "fmt"

// 响应常量。空字符串响应表示"未找到"，由各命令自行解释。
const (
	// RespOK 操作成功。
	RespOK = "Ok"

	// RespReplaced set 覆盖了已存在的 key。
	RespReplaced = "r Ok"

	// RespPong ping 的应答。
	RespPong = "PONG"

	// RespNotFound key 不存在时的响应体。
	RespNotFound = ""

	// ErrPrefix 错误响应的前缀。
	ErrPrefix = "ERR "
)

// FormatError 组装错误响应。
func FormatError(msg string) string {
	return ErrPrefix + msg
}

// FormatErrorf 组装带格式化参数的错误响应。
func FormatErrorf(format string, args ...any) string {
	return ErrPrefix + fmt.Sprintf(format, args...)
}

// IsError 判断响应是否为错误响应。
func IsError(resp string) bool {
	return len(resp) >= len(ErrPrefix) && resp[:len(ErrPrefix)] == ErrPrefix
}

// ErrorMessage 提取错误响应中的消息体。非错误响应原样返回。
func ErrorMessage(resp string) string {
	if IsError(resp) {
		return resp[len(ErrPrefix):]
	}
	return resp
}

// FormatStats 按协议约定组装统计响应行。
func FormatStats(hits, misses uint64, size int64, hitRate float64) string {
	return fmt.Sprintf("hits:%d misses:%d size:%d hit_rate:%.1f%%",
		hits, misses, size, hitRate)
}
