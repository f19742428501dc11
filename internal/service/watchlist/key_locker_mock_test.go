package watchlist

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/locker"
	"sync"
)

var _ keyLocker = &keyLockerMock{}

type keyLockerMock struct {
	LockFunc func(ctx context.Context, key string) (locker.Unlock, error)

	calls struct {
		Lock []struct {
			Ctx context.Context
			Key string
		}
	}
	lockLock sync.RWMutex
}

func (mock *keyLockerMock) Lock(ctx context.Context, key string) (locker.Unlock, error) {
	if mock.LockFunc == nil {
		panic("keyLockerMock.LockFunc: method is nil but keyLocker.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, key)
}

func (mock *keyLockerMock) LockCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}
