package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned when the lock could not be acquired within the
// bounded wait.
var ErrTimeout = errors.New("lock acquisition timed out")

// KeyLock serializes work per string key. Acquisition waits at most the
// given timeout, so contended callers fail fast instead of deadlocking.
// Entries are reference counted and dropped once the last interested caller
// lets go, so the map does not grow with every key ever locked.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*lock
}

type lock struct {
	ch   chan struct{}
	refs int
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*lock),
	}
}

func (kl *KeyLock) retain(key string) *lock {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	l, ok := kl.locks[key]
	if !ok {
		l = &lock{ch: make(chan struct{}, 1)}
		kl.locks[key] = l
	}
	l.refs++
	return l
}

func (kl *KeyLock) put(key string) {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	l, ok := kl.locks[key]
	if !ok {
		return
	}
	l.refs--
	if l.refs == 0 {
		delete(kl.locks, key)
	}
}

// Acquire takes the lock for key, waiting at most timeout. The returned
// release function must be called exactly once.
func (kl *KeyLock) Acquire(ctx context.Context, key string, timeout time.Duration) (release func(), err error) {
	l := kl.retain(key)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			kl.put(key)
		}, nil
	case <-timer.C:
		kl.put(key)
		return nil, ErrTimeout
	case <-ctx.Done():
		kl.put(key)
		return nil, ctx.Err()
	}
}
