package discord

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/service/settings"
	"sync"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	ApplyAlertActionFunc func(ctx context.Context, input settings.AlertActionInput) (*settings.Confirmation, error)
	EnsureScopeFunc      func(ctx context.Context, scopeID string) (*domain.Policy, error)
	ResetScopeFunc       func(ctx context.Context, scopeID string) (*settings.ResetScopeResult, error)
	SetAgePolicyFunc     func(ctx context.Context, input settings.SetAgePolicyInput) (*settings.Confirmation, error)
	SetRejoinPolicyFunc  func(ctx context.Context, input settings.SetRejoinPolicyInput) (*settings.Confirmation, error)
	SetReportOrderFunc   func(ctx context.Context, input settings.SetReportOrderInput) (*settings.Confirmation, error)
	TriggerDemoAlertFunc func(ctx context.Context, input settings.DemoAlertInput) (*settings.Confirmation, error)

	calls struct {
		ApplyAlertAction []struct {
			Ctx   context.Context
			Input settings.AlertActionInput
		}
		EnsureScope []struct {
			Ctx     context.Context
			ScopeID string
		}
		ResetScope []struct {
			Ctx     context.Context
			ScopeID string
		}
		SetAgePolicy []struct {
			Ctx   context.Context
			Input settings.SetAgePolicyInput
		}
		SetRejoinPolicy []struct {
			Ctx   context.Context
			Input settings.SetRejoinPolicyInput
		}
		SetReportOrder []struct {
			Ctx   context.Context
			Input settings.SetReportOrderInput
		}
		TriggerDemoAlert []struct {
			Ctx   context.Context
			Input settings.DemoAlertInput
		}
	}
	lockApplyAlertAction sync.RWMutex
	lockEnsureScope      sync.RWMutex
	lockResetScope       sync.RWMutex
	lockSetAgePolicy     sync.RWMutex
	lockSetRejoinPolicy  sync.RWMutex
	lockSetReportOrder   sync.RWMutex
	lockTriggerDemoAlert sync.RWMutex
}

func (mock *settingsServiceMock) ApplyAlertAction(ctx context.Context, input settings.AlertActionInput) (*settings.Confirmation, error) {
	if mock.ApplyAlertActionFunc == nil {
		panic("settingsServiceMock.ApplyAlertActionFunc: method is nil but settingsService.ApplyAlertAction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.AlertActionInput
	}{Ctx: ctx, Input: input}
	mock.lockApplyAlertAction.Lock()
	mock.calls.ApplyAlertAction = append(mock.calls.ApplyAlertAction, callInfo)
	mock.lockApplyAlertAction.Unlock()
	return mock.ApplyAlertActionFunc(ctx, input)
}

func (mock *settingsServiceMock) ApplyAlertActionCalls() []struct {
	Ctx   context.Context
	Input settings.AlertActionInput
} {
	mock.lockApplyAlertAction.RLock()
	calls := mock.calls.ApplyAlertAction
	mock.lockApplyAlertAction.RUnlock()
	return calls
}

func (mock *settingsServiceMock) EnsureScope(ctx context.Context, scopeID string) (*domain.Policy, error) {
	if mock.EnsureScopeFunc == nil {
		panic("settingsServiceMock.EnsureScopeFunc: method is nil but settingsService.EnsureScope was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
	}{Ctx: ctx, ScopeID: scopeID}
	mock.lockEnsureScope.Lock()
	mock.calls.EnsureScope = append(mock.calls.EnsureScope, callInfo)
	mock.lockEnsureScope.Unlock()
	return mock.EnsureScopeFunc(ctx, scopeID)
}

func (mock *settingsServiceMock) EnsureScopeCalls() []struct {
	Ctx     context.Context
	ScopeID string
} {
	mock.lockEnsureScope.RLock()
	calls := mock.calls.EnsureScope
	mock.lockEnsureScope.RUnlock()
	return calls
}

func (mock *settingsServiceMock) ResetScope(ctx context.Context, scopeID string) (*settings.ResetScopeResult, error) {
	if mock.ResetScopeFunc == nil {
		panic("settingsServiceMock.ResetScopeFunc: method is nil but settingsService.ResetScope was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
	}{Ctx: ctx, ScopeID: scopeID}
	mock.lockResetScope.Lock()
	mock.calls.ResetScope = append(mock.calls.ResetScope, callInfo)
	mock.lockResetScope.Unlock()
	return mock.ResetScopeFunc(ctx, scopeID)
}

func (mock *settingsServiceMock) ResetScopeCalls() []struct {
	Ctx     context.Context
	ScopeID string
} {
	mock.lockResetScope.RLock()
	calls := mock.calls.ResetScope
	mock.lockResetScope.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SetAgePolicy(ctx context.Context, input settings.SetAgePolicyInput) (*settings.Confirmation, error) {
	if mock.SetAgePolicyFunc == nil {
		panic("settingsServiceMock.SetAgePolicyFunc: method is nil but settingsService.SetAgePolicy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.SetAgePolicyInput
	}{Ctx: ctx, Input: input}
	mock.lockSetAgePolicy.Lock()
	mock.calls.SetAgePolicy = append(mock.calls.SetAgePolicy, callInfo)
	mock.lockSetAgePolicy.Unlock()
	return mock.SetAgePolicyFunc(ctx, input)
}

func (mock *settingsServiceMock) SetAgePolicyCalls() []struct {
	Ctx   context.Context
	Input settings.SetAgePolicyInput
} {
	mock.lockSetAgePolicy.RLock()
	calls := mock.calls.SetAgePolicy
	mock.lockSetAgePolicy.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SetRejoinPolicy(ctx context.Context, input settings.SetRejoinPolicyInput) (*settings.Confirmation, error) {
	if mock.SetRejoinPolicyFunc == nil {
		panic("settingsServiceMock.SetRejoinPolicyFunc: method is nil but settingsService.SetRejoinPolicy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.SetRejoinPolicyInput
	}{Ctx: ctx, Input: input}
	mock.lockSetRejoinPolicy.Lock()
	mock.calls.SetRejoinPolicy = append(mock.calls.SetRejoinPolicy, callInfo)
	mock.lockSetRejoinPolicy.Unlock()
	return mock.SetRejoinPolicyFunc(ctx, input)
}

func (mock *settingsServiceMock) SetRejoinPolicyCalls() []struct {
	Ctx   context.Context
	Input settings.SetRejoinPolicyInput
} {
	mock.lockSetRejoinPolicy.RLock()
	calls := mock.calls.SetRejoinPolicy
	mock.lockSetRejoinPolicy.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SetReportOrder(ctx context.Context, input settings.SetReportOrderInput) (*settings.Confirmation, error) {
	if mock.SetReportOrderFunc == nil {
		panic("settingsServiceMock.SetReportOrderFunc: method is nil but settingsService.SetReportOrder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.SetReportOrderInput
	}{Ctx: ctx, Input: input}
	mock.lockSetReportOrder.Lock()
	mock.calls.SetReportOrder = append(mock.calls.SetReportOrder, callInfo)
	mock.lockSetReportOrder.Unlock()
	return mock.SetReportOrderFunc(ctx, input)
}

func (mock *settingsServiceMock) SetReportOrderCalls() []struct {
	Ctx   context.Context
	Input settings.SetReportOrderInput
} {
	mock.lockSetReportOrder.RLock()
	calls := mock.calls.SetReportOrder
	mock.lockSetReportOrder.RUnlock()
	return calls
}

func (mock *settingsServiceMock) TriggerDemoAlert(ctx context.Context, input settings.DemoAlertInput) (*settings.Confirmation, error) {
	if mock.TriggerDemoAlertFunc == nil {
		panic("settingsServiceMock.TriggerDemoAlertFunc: method is nil but settingsService.TriggerDemoAlert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input settings.DemoAlertInput
	}{Ctx: ctx, Input: input}
	mock.lockTriggerDemoAlert.Lock()
	mock.calls.TriggerDemoAlert = append(mock.calls.TriggerDemoAlert, callInfo)
	mock.lockTriggerDemoAlert.Unlock()
	return mock.TriggerDemoAlertFunc(ctx, input)
}

func (mock *settingsServiceMock) TriggerDemoAlertCalls() []struct {
	Ctx   context.Context
	Input settings.DemoAlertInput
} {
	mock.lockTriggerDemoAlert.RLock()
	calls := mock.calls.TriggerDemoAlert
	mock.lockTriggerDemoAlert.RUnlock()
	return calls
}
