// Package client 实现 xkv 行协议的客户端。
//
// 每次操作建立一个新连接：写入请求、读到 EOF 即响应结束。
// 连接建立阶段带固定间隔的重试，请求发出后不再重试，
// 避免非幂等操作（set/delete）被重复执行。
package client
