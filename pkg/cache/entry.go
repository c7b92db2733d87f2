package cache

import (
	"slices"
	"time"
)

// entry 是缓存中的单条记录。
// expiresAt 为零值表示永不过期；lastAccessed 用于 LRU 追踪。
type entry struct {
	key          string
	value        []byte
	expiresAt    time.Time
	lastAccessed time.Time
}

// newEntry 创建一条新记录。ttl <= 0 表示永不过期。
// 值字节会被拷贝，调用方之后修改原切片不影响缓存内容。
func newEntry(key string, value []byte, ttl time.Duration, now time.Time) *entry {
	e := &entry{
		key:          key,
		value:        slices.Clone(value),
		lastAccessed: now,
	}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	return e
}

// expired 判断记录在 now 时刻是否已过期。
// 过期判定始终接收显式的 now，保证同一次操作内多次判定结果一致。
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// touch 将最后访问时间更新为 now。
func (e *entry) touch(now time.Time) {
	e.lastAccessed = now
}

// clone 深拷贝记录，值字节独立。
func (e *entry) clone() *entry {
	c := *e
	c.value = slices.Clone(e.value)
	return &c
}
