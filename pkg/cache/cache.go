package cache

import (
	"time"
)

// Cache 是存储引擎的轻量句柄。
// 所有方法并发安全；Clone 出的句柄共享同一引擎，写入互相可见。
// 必须通过 [New] 创建，零值不可用。
type Cache struct {
	db      *store
	cleaner *cleaner // nil 表示未启用后台清理
}

// New 创建缓存实例。
// 配置了 WithBackgroundCleanup(true) 且清理间隔为正时，
// 会同时启动后台清理任务；此时调用方负责在不再使用时调用 Close。
func New(opts ...Option) (*Cache, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	c := &Cache{db: newStore(cfg)}
	if cfg.backgroundCleanup && cfg.cleanupInterval > 0 {
		cl, err := newCleaner(c.db, cfg.cleanupInterval)
		if err != nil {
			return nil, err
		}
		cl.start()
		c.cleaner = cl
	}
	return c, nil
}

// Clone 返回共享同一存储引擎的新句柄：共享数据、共享统计，
// 不复制任何条目。后台清理任务归属原始句柄，Close 应经由它调用。
func (c *Cache) Clone() *Cache {
	return &Cache{db: c.db}
}

// Duplicate 深拷贝：复制全部条目到新的独立引擎，统计从零开始，
// 不继承后台清理任务。与 Clone 的共享语义截然不同，注意区分。
func (c *Cache) Duplicate() *Cache {
	return &Cache{db: c.db.clone()}
}

// Get 读取 key 对应的值。key 不存在或已过期时返回 false。
// 命中会更新条目的最后访问时间并把它移到最近使用的位置。
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.db.get(key)
}

// Set 写入键值对。配置了默认 TTL 时条目按默认 TTL 过期，
// 否则不过期。
func (c *Cache) Set(key string, value []byte) {
	c.db.set(key, value)
}

// SetWithTTL 写入键值对并显式指定 TTL，覆盖配置的默认值。
func (c *Cache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	c.db.setWithTTL(key, value, ttl)
}

// Delete 删除 key，返回其先前是否存在。
func (c *Cache) Delete(key string) bool {
	return c.db.del(key)
}

// Contains 判断 key 是否存在且未过期。不更新访问时间。
func (c *Cache) Contains(key string) bool {
	return c.db.contains(key)
}

// Len 返回当前条目数。
// 注意：返回值可能包含已过期但尚未被回收的条目。
func (c *Cache) Len() int {
	return c.db.size()
}

// IsEmpty 判断缓存是否为空。
func (c *Cache) IsEmpty() bool {
	return c.Len() == 0
}

// Clear 清空全部条目。只重置 size 计数器，其余统计保持累计值。
func (c *Cache) Clear() {
	c.db.reset()
}

// CleanupExpired 立即执行一次过期清理，返回移除的条目数。
// 适用于不依赖惰性过期或后台清理、希望自行控制清理时机的场景。
func (c *Cache) CleanupExpired() int {
	return c.db.cleanupExpired()
}

// Stats 返回共享的统计句柄，适合接入外部指标系统。
func (c *Cache) Stats() *Stats {
	return c.db.stats
}

// Snapshot 返回统计信息的时点快照。
func (c *Cache) Snapshot() Snapshot {
	return c.db.stats.Snapshot()
}

// Close 停止后台清理任务（如有）并等待进行中的清理完成。
// 幂等：多次调用只执行一次。未启用后台清理时为空操作。
func (c *Cache) Close() {
	if c.cleaner != nil {
		c.cleaner.stop()
	}
}
