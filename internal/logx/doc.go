// Package logx 提供 xkv 进程的结构化日志构建器。
//
// 基于标准库 log/slog，支持 text/json 两种输出格式、
// 字符串级别解析以及 lumberjack 文件轮转。
// 构建器链式调用收集配置，错误延迟到 Build 统一返回。
package logx
