package watchlist

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, scopeID string) (*domain.Policy, error)

	calls struct {
		GetOrCreate []struct {
			Ctx     context.Context
			ScopeID string
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *policyRepoMock) GetOrCreate(ctx context.Context, scopeID string) (*domain.Policy, error) {
	if mock.GetOrCreateFunc == nil {
		panic("policyRepoMock.GetOrCreateFunc: method is nil but policyRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
	}{Ctx: ctx, ScopeID: scopeID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, scopeID)
}

func (mock *policyRepoMock) GetOrCreateCalls() []struct {
	Ctx     context.Context
	ScopeID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
