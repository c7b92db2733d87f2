// Package proto 定义 xkv 的行协议：每个连接一轮请求/响应，
// 请求为单个空格分隔的 ASCII 记号序列，以读结束为界，无长度前缀。
//
// 已知限制: 按空白朴素切分，值本身不能包含空格。
package proto
