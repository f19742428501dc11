package settings

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, scopeID string) (*domain.Policy, error)
	ResetFunc       func(ctx context.Context, scopeID string) error
	UpdateFunc      func(ctx context.Context, scopeID string, u domain.PolicyUpdate) (*domain.Policy, error)

	calls struct {
		GetOrCreate []struct {
			Ctx     context.Context
			ScopeID string
		}
		Reset []struct {
			Ctx     context.Context
			ScopeID string
		}
		Update []struct {
			Ctx     context.Context
			ScopeID string
			U       domain.PolicyUpdate
		}
	}
	lockGetOrCreate sync.RWMutex
	lockReset       sync.RWMutex
	lockUpdate      sync.RWMutex
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

func (mock *policyRepoMock) Reset(ctx context.Context, scopeID string) error {
	if mock.ResetFunc == nil {
		panic("policyRepoMock.ResetFunc: method is nil but policyRepo.Reset was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
	}{Ctx: ctx, ScopeID: scopeID}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, scopeID)
}

func (mock *policyRepoMock) ResetCalls() []struct {
	Ctx     context.Context
	ScopeID string
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

func (mock *policyRepoMock) Update(ctx context.Context, scopeID string, u domain.PolicyUpdate) (*domain.Policy, error) {
	if mock.UpdateFunc == nil {
		panic("policyRepoMock.UpdateFunc: method is nil but policyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
		U       domain.PolicyUpdate
	}{Ctx: ctx, ScopeID: scopeID, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, scopeID, u)
}

func (mock *policyRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ScopeID string
	U       domain.PolicyUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
