package settings

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ announcer = &announcerMock{}

type announcerMock struct {
	BroadcastFunc func(ctx context.Context, policy *domain.Policy, text string, skipChannel string) (*domain.DispatchResult, error)
	DispatchFunc  func(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error)

	calls struct {
		Broadcast []struct {
			Ctx         context.Context
			Policy      *domain.Policy
			Text        string
			SkipChannel string
		}
		Dispatch []struct {
			Ctx    context.Context
			Policy *domain.Policy
			Alert  *domain.AlertRequest
		}
	}
	lockBroadcast sync.RWMutex
	lockDispatch  sync.RWMutex
}

func (mock *announcerMock) Broadcast(ctx context.Context, policy *domain.Policy, text string, skipChannel string) (*domain.DispatchResult, error) {
	if mock.BroadcastFunc == nil {
		panic("announcerMock.BroadcastFunc: method is nil but announcer.Broadcast was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Policy      *domain.Policy
		Text        string
		SkipChannel string
	}{Ctx: ctx, Policy: policy, Text: text, SkipChannel: skipChannel}
	mock.lockBroadcast.Lock()
	mock.calls.Broadcast = append(mock.calls.Broadcast, callInfo)
	mock.lockBroadcast.Unlock()
	return mock.BroadcastFunc(ctx, policy, text, skipChannel)
}

func (mock *announcerMock) BroadcastCalls() []struct {
	Ctx         context.Context
	Policy      *domain.Policy
	Text        string
	SkipChannel string
} {
	mock.lockBroadcast.RLock()
	calls := mock.calls.Broadcast
	mock.lockBroadcast.RUnlock()
	return calls
}

func (mock *announcerMock) Dispatch(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error) {
	if mock.DispatchFunc == nil {
		panic("announcerMock.DispatchFunc: method is nil but announcer.Dispatch was just called")
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

func (mock *announcerMock) DispatchCalls() []struct {
	Ctx    context.Context
	Policy *domain.Policy
	Alert  *domain.AlertRequest
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
