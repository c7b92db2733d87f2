// Package conf 提供 xkv 服务端的配置结构与加载逻辑，基于 koanf 实现。
//
// 配置来源优先级（由低到高）：内置默认值 → 配置文件 → 命令行参数。
// 文件格式按扩展名自动识别（.yaml/.yml 或 .json）。
package conf
