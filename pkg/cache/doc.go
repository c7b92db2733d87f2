// Package cache 提供并发安全的进程内键值缓存：容量上限 + LRU 淘汰、
// 条目级可选 TTL、惰性过期 + 可选后台清理、原子计数统计，
// 以及可廉价克隆的共享句柄。
//
// # 核心语义
//
//   - 插入顺序即访问新旧顺序：Get 命中会把条目移到队尾，队首永远是淘汰候选
//   - 淘汰只在插入新 key 且已达容量时发生，覆盖已有 key 不触发淘汰
//   - 过期是惰性的：条目在被 Get/Contains/清理扫描碰到时才真正移除
//   - 统计计数器只做观测，不参与任何正确性决策
//
// # 句柄与克隆
//
// Cache 是存储引擎的轻量句柄。Clone 共享同一引擎（写入互相可见，
// 统计共享）；Duplicate 深拷贝全部条目到独立引擎且统计归零。
// 二者语义截然不同，按需选用。
//
// # 降级模式
//
// 临界区内的 panic 被捕获后引擎进入降级状态：此后读操作视存储为空，
// 写操作静默忽略，进程保持存活。该状态不可恢复，也不会向调用方报错。
//
// # 后台清理
//
// 默认配置下清理间隔为 60 秒但后台清理关闭——间隔是惰性的，
// 只有 WithBackgroundCleanup(true) 之后才会生效。
package cache
