package alert

import (
	"context"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"sync"
)

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, dest domain.Destination, msg domain.Message) error

	calls struct {
		Send []struct {
			Ctx  context.Context
			Dest domain.Destination
			Msg  domain.Message
		}
	}
	lockSend sync.RWMutex
}

func (mock *senderMock) Send(ctx context.Context, dest domain.Destination, msg domain.Message) error {
	if mock.SendFunc == nil {
		panic("senderMock.SendFunc: method is nil but sender.Send was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Dest domain.Destination
		Msg  domain.Message
	}{Ctx: ctx, Dest: dest, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, dest, msg)
}

func (mock *senderMock) SendCalls() []struct {
	Ctx  context.Context
	Dest domain.Destination
	Msg  domain.Message
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
