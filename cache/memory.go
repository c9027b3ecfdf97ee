package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const memoryCacheSize = 1024

// Memory is an in-process cache backed by expirable LRUs. The LRU library
// fixes the TTL per cache, so one LRU is kept per distinct TTL requested -
// the engine only ever uses two (vendor matches and the strategy matrix).
type Memory struct {
	mu   sync.Mutex
	lrus map[time.Duration]*expirable.LRU[string, []byte]
}

func NewMemory() *Memory {
	return &Memory{
		lrus: make(map[time.Duration]*expirable.LRU[string, []byte]),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, lru := range m.lrus {
		if val, ok := lru.Get(key); ok {
			return val, true
		}
	}
	return nil, false
}

func (m *Memory) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	lru, ok := m.lrus[ttl]
	if !ok {
		lru = expirable.NewLRU[string, []byte](memoryCacheSize, nil, ttl)
		m.lrus[ttl] = lru
	}
	m.mu.Unlock()

	lru.Add(key, value)
}

func (m *Memory) Del(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, lru := range m.lrus {
		lru.Remove(key)
	}
}
