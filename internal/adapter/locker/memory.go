package locker

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process keyed mutex. Entries are dropped once no
// goroutine holds or waits for them.
type Memory struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	sem  chan struct{}
	refs int
}

func NewMemory() *Memory {
	return &Memory{locks: make(map[string]*entry)}
}

// Lock blocks until key is free or ctx is done.
func (m *Memory) Lock(ctx context.Context, key string) (Unlock, error) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		m.release(key, e)
		return nil, fmt.Errorf("lock %s: %w: %w", key, ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			m.release(key, e)
		})
	}, nil
}

func (m *Memory) release(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
}

// size is the number of live entries.
func (m *Memory) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
