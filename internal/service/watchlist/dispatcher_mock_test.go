package watchlist

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	DispatchFunc func(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error)

	calls struct {
		Dispatch []struct {
			Ctx    context.Context
			Policy *domain.Policy
			Alert  *domain.AlertRequest
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *dispatcherMock) Dispatch(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error) {
	if mock.DispatchFunc == nil {
		panic("dispatcherMock.DispatchFunc: method is nil but dispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Policy *domain.Policy
		Alert  *domain.AlertRequest
	}{Ctx: ctx, Policy: policy, Alert: alert}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, policy, alert)
}

func (mock *dispatcherMock) DispatchCalls() []struct {
	Ctx    context.Context
	Policy *domain.Policy
	Alert  *domain.AlertRequest
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
