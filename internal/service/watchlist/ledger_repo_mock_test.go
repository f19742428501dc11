package watchlist

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, scopeID string, subjectID string) (*domain.LedgerEntry, error)
	IncrementFunc   func(ctx context.Context, scopeID string, subjectID string) (*domain.LedgerEntry, error)

	calls struct {
		GetOrCreate []struct {
			Ctx       context.Context
			ScopeID   string
			SubjectID string
		}
		Increment []struct {
			Ctx       context.Context
			ScopeID   string
			SubjectID string
		}
	}
	lockGetOrCreate sync.RWMutex
	lockIncrement   sync.RWMutex
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

func (mock *ledgerRepoMock) Increment(ctx context.Context, scopeID string, subjectID string) (*domain.LedgerEntry, error) {
	if mock.IncrementFunc == nil {
		panic("ledgerRepoMock.IncrementFunc: method is nil but ledgerRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ScopeID   string
		SubjectID string
	}{Ctx: ctx, ScopeID: scopeID, SubjectID: subjectID}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, scopeID, subjectID)
}

func (mock *ledgerRepoMock) IncrementCalls() []struct {
	Ctx       context.Context
	ScopeID   string
	SubjectID string
} {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}
