package processor

import (
	"context"
	"sync"
)

// KeyedLocker is an in-process try-lock keyed by string.
type KeyedLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{held: make(map[string]struct{})}
}

func (l *KeyedLocker) TryLock(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}

// ChainLocker acquires every locker in order and releases in reverse.
// It fails fast when any of them is already held.
type ChainLocker []Locker

func (c ChainLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	releases := make([]func(), 0, len(c))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, locker := range c {
		release, acquired, err := locker.TryLock(ctx, key)
		if err != nil || !acquired {
			releaseAll()
			return nil, false, err
		}
		releases = append(releases, release)
	}
	return releaseAll, true, nil
}
