package cache

import (
	"container/list"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// store 是存储引擎：有序的 key→entry 映射，整体由单把读写锁保护。
// 链表顺序即访问新旧顺序——队首是最久未访问的条目（淘汰候选），
// 队尾是最近访问的条目。所有变更（包括 get 内部的 touch 重排）
// 都串行通过唯一的写者席位，这是刻意的简单性/吞吐取舍。
type store struct {
	mu    sync.RWMutex
	order *list.List // 元素值为 *entry
	index map[string]*list.Element

	cfg   *Config
	stats *Stats

	// degraded 标记引擎已进入降级状态：临界区内发生过 panic 后置位。
	// 置位后读操作视存储为空、写操作静默忽略，任何操作不再 panic。
	degraded atomic.Bool
}

func newStore(cfg *Config) *store {
	return &store{
		order: list.New(),
		index: make(map[string]*list.Element),
		cfg:   cfg,
		stats: NewStats(),
	}
}

// withRead 在读锁内执行 fn，返回是否真正执行。
//
// 设计决策: Go 的锁没有 poisoned 语义，此处以"临界区 panic → 降级"还原
// 同等的失败软着陆契约：所有操作都经由 withRead/withWrite 这两个
// 结果检查式助手加锁，绝不直接触碰 mu。降级后读如空、写如无。
func (s *store) withRead(fn func()) (ok bool) {
	if s.degraded.Load() {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			s.degraded.Store(true)
			ok = false
		}
	}()
	fn()
	return true
}

// withWrite 在写锁内执行 fn，返回是否真正执行。语义同 withRead。
func (s *store) withWrite(fn func()) (ok bool) {
	if s.degraded.Load() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.degraded.Store(true)
			ok = false
		}
	}()
	fn()
	return true
}

// get 读取 key 对应的值，不存在或已过期返回 false。
//
// 读阶段命中后先拷贝值、释放读锁，再重新获取写锁做"乐观 touch"：
// 两把锁之间条目可能被并发删除或过期移除，此时 touch 静默跳过，
// 读阶段已拷贝的值照常返回给调用方。
func (s *store) get(key string) ([]byte, bool) {
	var (
		val     []byte
		found   bool
		expired bool
	)
	if !s.withRead(func() {
		el, exists := s.index[key]
		if !exists {
			return
		}
		en := el.Value.(*entry)
		if en.expired(time.Now()) {
			expired = true
			return
		}
		val = slices.Clone(en.value)
		found = true
	}) {
		return nil, false
	}

	if expired {
		s.removeExpired(key)
		s.stats.recordMiss()
		s.stats.recordExpiration()
		return nil, false
	}
	if !found {
		s.stats.recordMiss()
		return nil, false
	}
	s.stats.recordHit()

	s.withWrite(func() {
		if el, exists := s.index[key]; exists {
			el.Value.(*entry).touch(time.Now())
			s.order.MoveToBack(el)
		}
	})
	return val, true
}

// set 写入键值对，TTL 取配置的默认值（未配置则不过期）。
func (s *store) set(key string, value []byte) {
	s.setInternal(key, value, s.cfg.defaultTTL)
}

// setWithTTL 写入键值对并显式指定 TTL，覆盖配置的默认值。
func (s *store) setWithTTL(key string, value []byte, ttl time.Duration) {
	s.setInternal(key, value, ttl)
}

func (s *store) setInternal(key string, value []byte, ttl time.Duration) {
	en := newEntry(key, value, ttl, time.Now())

	s.withWrite(func() {
		el, exists := s.index[key]

		// 淘汰只在插入新 key 时触发：覆盖已有 key 不得淘汰。
		if !exists && s.cfg.maxCapacity > 0 {
			for s.order.Len() >= s.cfg.maxCapacity {
				s.evictOldest()
			}
		}

		if exists {
			// 覆盖保持原有顺序位置，不移动到队尾。
			el.Value = en
		} else {
			s.index[key] = s.order.PushBack(en)
			s.stats.incrementSize()
		}
		s.stats.recordSet()
	})
}

// evictOldest 淘汰队首（最久未访问）的条目。调用方必须持有写锁。
func (s *store) evictOldest() {
	front := s.order.Front()
	if front == nil {
		return
	}
	en := front.Value.(*entry)
	s.order.Remove(front)
	delete(s.index, en.key)
	s.stats.recordEviction()
	s.stats.decrementSize()
}

// del 删除 key，返回其先前是否存在。降级状态下恒为 false。
func (s *store) del(key string) bool {
	var existed bool
	s.withWrite(func() {
		el, exists := s.index[key]
		if !exists {
			return
		}
		s.order.Remove(el)
		delete(s.index, key)
		s.stats.decrementSize()
		s.stats.recordDelete()
		existed = true
	})
	return existed
}

// contains 判断 key 是否存在且未过期。与 get 的区别：不更新访问时间。
// 碰到已过期条目时触发与 get 相同的过期移除路径并返回 false。
func (s *store) contains(key string) bool {
	var live, expired bool
	if !s.withRead(func() {
		el, exists := s.index[key]
		if !exists {
			return
		}
		if el.Value.(*entry).expired(time.Now()) {
			expired = true
			return
		}
		live = true
	}) {
		return false
	}
	if expired {
		s.removeExpired(key)
		return false
	}
	return live
}

// removeExpired 在写锁内复核后移除指定的过期条目。
// 只递减 size 计数器；miss/expiration 的记账由 get 的过期路径负责。
// 复核是必要的：读写锁切换的窗口内条目可能已被覆盖为未过期的新值。
func (s *store) removeExpired(key string) {
	s.withWrite(func() {
		el, exists := s.index[key]
		if !exists {
			return
		}
		if !el.Value.(*entry).expired(time.Now()) {
			return
		}
		s.order.Remove(el)
		delete(s.index, key)
		s.stats.decrementSize()
	})
}

// size 返回当前条目数，可能包含尚未回收的已过期条目。
func (s *store) size() int {
	var n int
	s.withRead(func() { n = s.order.Len() })
	return n
}

// reset 清空全部条目。只把 size 计数器归零，其余计数器保持累计值。
func (s *store) reset() {
	s.withWrite(func() {
		s.order.Init()
		clear(s.index)
		s.stats.setSize(0)
	})
}

// cleanupExpired 以同一个 now 做一次全量扫描，移除所有已过期条目。
// 每移除一条记一次 expiration 并递减 size，返回移除数量。
func (s *store) cleanupExpired() int {
	var removed int
	s.withWrite(func() {
		now := time.Now()
		for el := s.order.Front(); el != nil; {
			next := el.Next()
			if en := el.Value.(*entry); en.expired(now) {
				s.order.Remove(el)
				delete(s.index, en.key)
				s.stats.recordExpiration()
				s.stats.decrementSize()
				removed++
			}
			el = next
		}
	})
	return removed
}

// clone 深拷贝全部条目到新 store：数据独立，统计全新归零。
// 降级状态下返回空 store。
func (s *store) clone() *store {
	dst := newStore(s.cfg)
	s.withRead(func() {
		for el := s.order.Front(); el != nil; el = el.Next() {
			en := el.Value.(*entry).clone()
			dst.index[en.key] = dst.order.PushBack(en)
		}
	})
	return dst
}
