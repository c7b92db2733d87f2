// Package server 实现 xkv 的 TCP 服务端。
//
// 连接模型沿用行协议的约定：每个连接只处理一轮请求/响应——
// 读一次、写一次、关闭。连接处理经由并发上限受控的 errgroup 调度，
// 关闭时等待在途连接处理完毕。
package server
