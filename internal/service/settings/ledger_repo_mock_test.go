package settings

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, scopeID string, subjectID string) (*domain.LedgerEntry, error)
	ResetAllFunc    func(ctx context.Context, scopeID string) (int64, error)

	calls struct {
		GetOrCreate []struct {
			Ctx       context.Context
			ScopeID   string
			SubjectID string
		}
		ResetAll []struct {
			Ctx     context.Context
			ScopeID string
		}
	}
	lockGetOrCreate sync.RWMutex
	lockResetAll    sync.RWMutex
}

func (mock *ledgerRepoMock) GetOrCreate(ctx context.Context, scopeID string, subjectID string) (*domain.LedgerEntry, error) {
	if mock.GetOrCreateFunc == nil {
		panic("ledgerRepoMock.GetOrCreateFunc: method is nil but ledgerRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ScopeID   string
		SubjectID string
	}{Ctx: ctx, ScopeID: scopeID, SubjectID: subjectID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, scopeID, subjectID)
}

func (mock *ledgerRepoMock) GetOrCreateCalls() []struct {
	Ctx       context.Context
	ScopeID   string
	SubjectID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) ResetAll(ctx context.Context, scopeID string) (int64, error) {
	if mock.ResetAllFunc == nil {
		panic("ledgerRepoMock.ResetAllFunc: method is nil but ledgerRepo.ResetAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
	}{Ctx: ctx, ScopeID: scopeID}
	mock.lockResetAll.Lock()
	mock.calls.ResetAll = append(mock.calls.ResetAll, callInfo)
	mock.lockResetAll.Unlock()
	return mock.ResetAllFunc(ctx, scopeID)
}

func (mock *ledgerRepoMock) ResetAllCalls() []struct {
	Ctx     context.Context
	ScopeID string
} {
	mock.lockResetAll.RLock()
	calls := mock.calls.ResetAll
	mock.lockResetAll.RUnlock()
	return calls
}
