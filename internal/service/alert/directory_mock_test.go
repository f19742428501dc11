package alert

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ directory = &directoryMock{}

type directoryMock struct {
	ClassifyMentionableFunc func(ctx context.Context, scopeID string, id string) (domain.MentionKind, error)
	ResolveChannelFunc      func(ctx context.Context, scopeID string, channelID string) (domain.Destination, error)

	calls struct {
		ClassifyMentionable []struct {
			Ctx     context.Context
			ScopeID string
			ID      string
		}
		ResolveChannel []struct {
			Ctx       context.Context
			ScopeID   string
			ChannelID string
		}
	}
	lockClassifyMentionable sync.RWMutex
	lockResolveChannel      sync.RWMutex
}

func (mock *directoryMock) ClassifyMentionable(ctx context.Context, scopeID string, id string) (domain.MentionKind, error) {
	if mock.ClassifyMentionableFunc == nil {
		panic("directoryMock.ClassifyMentionableFunc: method is nil but directory.ClassifyMentionable was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScopeID string
		ID      string
	}{Ctx: ctx, ScopeID: scopeID, ID: id}
	mock.lockClassifyMentionable.Lock()
	mock.calls.ClassifyMentionable = append(mock.calls.ClassifyMentionable, callInfo)
	mock.lockClassifyMentionable.Unlock()
	return mock.ClassifyMentionableFunc(ctx, scopeID, id)
}

func (mock *directoryMock) ClassifyMentionableCalls() []struct {
	Ctx     context.Context
	ScopeID string
	ID      string
} {
	mock.lockClassifyMentionable.RLock()
	calls := mock.calls.ClassifyMentionable
	mock.lockClassifyMentionable.RUnlock()
	return calls
}

func (mock *directoryMock) ResolveChannel(ctx context.Context, scopeID string, channelID string) (domain.Destination, error) {
	if mock.ResolveChannelFunc == nil {
		panic("directoryMock.ResolveChannelFunc: method is nil but directory.ResolveChannel was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ScopeID   string
		ChannelID string
	}{Ctx: ctx, ScopeID: scopeID, ChannelID: channelID}
	mock.lockResolveChannel.Lock()
	mock.calls.ResolveChannel = append(mock.calls.ResolveChannel, callInfo)
	mock.lockResolveChannel.Unlock()
	return mock.ResolveChannelFunc(ctx, scopeID, channelID)
}

func (mock *directoryMock) ResolveChannelCalls() []struct {
	Ctx       context.Context
	ScopeID   string
	ChannelID string
} {
	mock.lockResolveChannel.RLock()
	calls := mock.calls.ResolveChannel
	mock.lockResolveChannel.RUnlock()
	return calls
}
