package cache

import "sync/atomic"

// Stats 是单个存储引擎实例的运行统计。
// 所有计数器均为相互独立的原子操作，仅用于观测：
// 容量淘汰读取的是真实的映射长度，而非 size 计数器。
//
// Stats 随引擎创建、随引擎销毁。Clone 出的句柄共享同一份 Stats；
// Duplicate 出的引擎持有全新归零的 Stats。
type Stats struct {
	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
	size        atomic.Int64
	sets        atomic.Uint64
	deletes     atomic.Uint64
}

// NewStats 创建所有计数器归零的统计实例。
func NewStats() *Stats { return &Stats{} }

func (s *Stats) recordHit()        { s.hits.Add(1) }
func (s *Stats) recordMiss()       { s.misses.Add(1) }
func (s *Stats) recordEviction()   { s.evictions.Add(1) }
func (s *Stats) recordExpiration() { s.expirations.Add(1) }
func (s *Stats) recordSet()        { s.sets.Add(1) }
func (s *Stats) recordDelete()     { s.deletes.Add(1) }
func (s *Stats) incrementSize()    { s.size.Add(1) }
func (s *Stats) decrementSize()    { s.size.Add(-1) }
func (s *Stats) setSize(n int64)   { s.size.Store(n) }

// Hits 返回命中次数。
func (s *Stats) Hits() uint64 { return s.hits.Load() }

// Misses 返回未命中次数（含过期视为未命中的情况）。
func (s *Stats) Misses() uint64 { return s.misses.Load() }

// Evictions 返回因容量淘汰的条目数。
func (s *Stats) Evictions() uint64 { return s.evictions.Load() }

// Expirations 返回因 TTL 过期移除的条目数。
func (s *Stats) Expirations() uint64 { return s.expirations.Load() }

// Size 返回 size 计数器的当前值。
// 这是观测值，可能与真实条目数短暂不一致。
func (s *Stats) Size() int64 { return s.size.Load() }

// Sets 返回累计的写入操作次数。
func (s *Stats) Sets() uint64 { return s.sets.Load() }

// Deletes 返回累计的删除操作次数。
func (s *Stats) Deletes() uint64 { return s.deletes.Load() }

// HitRate 返回命中率百分比（0.0 - 100.0）。
// 每次调用基于当前的 hits/misses 重新计算，不做缓存；
// 尚无任何 Get 操作时返回 0。
func (s *Stats) HitRate() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// Snapshot 组装一份时点快照。
// 各字段单独原子读取后组装，字段之间不保证事务一致。
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:        s.Hits(),
		Misses:      s.Misses(),
		Evictions:   s.Evictions(),
		Expirations: s.Expirations(),
		Size:        s.Size(),
		Sets:        s.Sets(),
		Deletes:     s.Deletes(),
		HitRate:     s.HitRate(),
	}
}

// Snapshot 是统计信息的不可变时点快照，适合对外上报或日志输出。
type Snapshot struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
	Size        int64
	Sets        uint64
	Deletes     uint64
	HitRate     float64
}
