package discord

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/service/watchlist"
	"sync"
)

var _ evaluator = &evaluatorMock{}

type evaluatorMock struct {
	EvaluateFunc func(ctx context.Context, ev domain.Event) (*watchlist.Outcome, error)

	calls struct {
		Evaluate []struct {
			Ctx context.Context
			Ev  domain.Event
		}
	}
	lockEvaluate sync.RWMutex
}

func (mock *evaluatorMock) Evaluate(ctx context.Context, ev domain.Event) (*watchlist.Outcome, error) {
	if mock.EvaluateFunc == nil {
		panic("evaluatorMock.EvaluateFunc: method is nil but evaluator.Evaluate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockEvaluate.Lock()
	mock.calls.Evaluate = append(mock.calls.Evaluate, callInfo)
	mock.lockEvaluate.Unlock()
	return mock.EvaluateFunc(ctx, ev)
}

func (mock *evaluatorMock) EvaluateCalls() []struct {
	Ctx context.Context
	Ev  domain.Event
} {
	mock.lockEvaluate.RLock()
	calls := mock.calls.Evaluate
	mock.lockEvaluate.RUnlock()
	return calls
}
