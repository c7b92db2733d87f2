package cache

import (
	"fmt"
	"testing"
)

func BenchmarkStore_Set(b *testing.B) {
	s := newTestStore(WithMaxCapacity(10000))
	val := []byte("benchmark-value")

	for i := 0; b.Loop(); i++ {
		s.set(fmt.Sprintf("key-%d", i%10000), val)
	}
}

func BenchmarkStore_Get(b *testing.B) {
	s := newTestStore(WithMaxCapacity(10000))
	val := []byte("benchmark-value")
	for i := range 10000 {
		s.set(fmt.Sprintf("key-%d", i), val)
	}

	for i := 0; b.Loop(); i++ {
		s.get(fmt.Sprintf("key-%d", i%10000))
	}
}

func BenchmarkStore_Mixed(b *testing.B) {
	s := newTestStore(WithMaxCapacity(1000))
	val := []byte("benchmark-value")

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("key-%d", i%2000)
			if i%10 < 8 {
				s.get(key)
			} else {
				s.set(key, val)
			}
			i++
		}
	})
}
