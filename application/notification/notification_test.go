package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	identitymocks "github.com/muhammadheryan/marketplace/mocks/application/identity"
	notificationmocks "github.com/muhammadheryan/marketplace/mocks/application/notification"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func created() model.TransferNotification {
	return model.TransferNotification{
		Event:       constant.TransferEventCreated,
		TransferID:  7,
		FromUserID:  1,
		ToUserID:    2,
		RecipientID: 2,
		ActorID:     1,
		ItemsCount:  3,
		OccurredAt:  time.Now(),
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(r *identitymocks.Resolver, m *notificationmocks.Mailer)
	}{
		{
			name: "success: mail goes to the recipient",
			mockCall: func(r *identitymocks.Resolver, m *notificationmocks.Mailer) {
				r.On("LookupEmail", mock.Anything, uint64(2)).Return("bob@example.com", nil).Once()
				m.On("Send", mock.Anything, "bob@example.com", "New transfer #7", mock.MatchedBy(func(body string) bool {
					return len(body) > 0
				})).Return(nil).Once()
			},
		},
		{
			name: "lookup failure is swallowed",
			mockCall: func(r *identitymocks.Resolver, m *notificationmocks.Mailer) {
				r.On("LookupEmail", mock.Anything, uint64(2)).Return("", cerr.SetCustomError(constant.ErrUnavailable)).Once()
			},
		},
		{
			name: "send failure is swallowed",
			mockCall: func(r *identitymocks.Resolver, m *notificationmocks.Mailer) {
				r.On("LookupEmail", mock.Anything, uint64(2)).Return("bob@example.com", nil).Once()
				m.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp: 421")).Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resolver := identitymocks.NewResolver(t)
			mailer := notificationmocks.NewMailer(t)
			tt.mockCall(resolver, mailer)

			notification.NewDispatcher(resolver, mailer).Dispatch(context.Background(), created())
		})
	}
}

func TestRender(t *testing.T) {
	subject, body := notification.Render(created())
	assert.Equal(t, "New transfer #7", subject)
	assert.Contains(t, body, "User 1 wants to transfer 3 item(s) to you")

	accepted := created()
	accepted.Event = constant.TransferEventAccepted
	accepted.ActorID = 2
	subject, body = notification.Render(accepted)
	assert.Equal(t, "Transfer #7 accepted", subject)
	assert.Contains(t, body, "User 2 accepted transfer #7")

	rejected := created()
	rejected.Event = constant.TransferEventRejected
	subject, _ = notification.Render(rejected)
	assert.Equal(t, "Transfer #7 rejected", subject)
}

func TestAsyncNotifier_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	resolver := identitymocks.NewResolver(t)
	mailer := notificationmocks.NewMailer(t)
	resolver.On("LookupEmail", mock.Anything, uint64(2)).Return("bob@example.com", nil).Once()
	mailer.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()

	n := notification.NewAsyncNotifier(notification.NewDispatcher(resolver, mailer))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, n.NotifyTransfer(ctx, created()))
	// the request context ending must not cancel delivery
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer waitCancel()
	assert.ErrorIs(t, n.Wait(waitCtx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, n.Wait(context.Background()))
}

func TestDispatcher_LogsLookupFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	resolver := identitymocks.NewResolver(t)
	resolver.On("LookupEmail", mock.Anything, uint64(2)).Return("", errors.New("dial tcp: refused")).Once()

	notification.NewDispatcher(resolver, notificationmocks.NewMailer(t)).Dispatch(context.Background(), created())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, uint64(7), logs.All()[0].ContextMap()["transfer_id"])
}
