package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Counters(t *testing.T) {
	s := NewStats()

	s.recordHit()
	s.recordHit()
	s.recordMiss()
	s.recordEviction()
	s.recordExpiration()
	s.recordSet()
	s.recordDelete()
	s.incrementSize()
	s.incrementSize()
	s.decrementSize()

	assert.Equal(t, uint64(2), s.Hits())
	assert.Equal(t, uint64(1), s.Misses())
	assert.Equal(t, uint64(1), s.Evictions())
	assert.Equal(t, uint64(1), s.Expirations())
	assert.Equal(t, uint64(1), s.Sets())
	assert.Equal(t, uint64(1), s.Deletes())
	assert.Equal(t, int64(1), s.Size())
}

func TestStats_HitRate(t *testing.T) {
	t.Run("no requests", func(t *testing.T) {
		s := NewStats()
		assert.Zero(t, s.HitRate())
	})

	t.Run("mixed", func(t *testing.T) {
		s := NewStats()
		s.recordHit()
		s.recordHit()
		s.recordHit()
		s.recordMiss()
		assert.InDelta(t, 75.0, s.HitRate(), 0.001)
	})

	t.Run("all hits", func(t *testing.T) {
		s := NewStats()
		s.recordHit()
		assert.InDelta(t, 100.0, s.HitRate(), 0.001)
	})
}

func TestStats_Snapshot(t *testing.T) {
	s := NewStats()
	s.recordHit()
	s.recordMiss()
	s.recordSet()
	s.incrementSize()

	snap := s.Snapshot()
	require.Equal(t, uint64(1), snap.Hits)
	require.Equal(t, uint64(1), snap.Misses)
	require.Equal(t, int64(1), snap.Size)
	require.Equal(t, uint64(1), snap.Sets)
	require.InDelta(t, 50.0, snap.HitRate, 0.001)

	// 快照是拷贝，后续计数不影响已取得的快照。
	s.recordHit()
	assert.Equal(t, uint64(1), snap.Hits)
}

func TestStats_ConcurrentRecording(t *testing.T) {
	const (
		goroutines = 16
		perG       = 1000
	)

	s := NewStats()
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perG {
				s.recordHit()
				s.recordMiss()
				s.incrementSize()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*perG), s.Hits())
	assert.Equal(t, uint64(goroutines*perG), s.Misses())
	assert.Equal(t, int64(goroutines*perG), s.Size())
}
