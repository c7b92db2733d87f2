package proto

import "strings"

// Command 协议命令。
type Command string

const (
	CmdGet    Command = "get"
	CmdSet    Command = "set"
	CmdDelete Command = "delete"
	CmdPing   Command = "ping"
	CmdStats  Command = "stats"

	// CmdUnknown 无法识别的命令。
	CmdUnknown Command = ""
)

// ParseCommand 解析命令记号：不区分大小写，并接受常见别名
// （del → delete，info → stats）。无法识别时返回 CmdUnknown。
func ParseCommand(token string) Command {
	switch strings.ToLower(token) {
	case "get":
		return CmdGet
	case "set":
		return CmdSet
	case "delete", "del":
		return CmdDelete
	case "ping":
		return CmdPing
	case "stats", "info":
		return CmdStats
	default:
		return CmdUnknown
	}
}

// Fields 把一轮请求的原始字节切分为记号序列。
// 朴素空白切分：连续空白视为单个分隔符，首尾空白忽略。
func Fields(raw []byte) []string {
	return strings.Fields(string(raw))
}
