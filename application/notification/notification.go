// Package notification tells users about transfers that concern them.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/marketplace/application/identity"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

const defaultDispatchTimeout = 10 * time.Second

// Notifier accepts a transfer event after the transaction that produced it has committed.
// Implementations must not block the caller on delivery.
type Notifier interface {
	NotifyTransfer(ctx context.Context, msg model.TransferNotification) error
}

// Mailer delivers a single plain text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Dispatcher struct {
	resolver identity.Resolver
	mailer   Mailer
}

func NewDispatcher(resolver identity.Resolver, mailer Mailer) *Dispatcher {
	return &Dispatcher{resolver: resolver, mailer: mailer}
}

// Dispatch looks up the recipient and sends the rendered message.
// Failures are logged; a transfer never depends on delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, msg model.TransferNotification) {
	email, err := d.resolver.LookupEmail(ctx, msg.RecipientID)
	if err != nil {
		logger.Warn("[Dispatch] lookup recipient email",
			zap.Uint64("transfer_id", msg.TransferID),
			zap.Uint64("recipient_id", msg.RecipientID),
			zap.String("error", err.Error()))
		return
	}

	subject, body := Render(msg)
	if err := d.mailer.Send(ctx, email, subject, body); err != nil {
		logger.Warn("[Dispatch] send mail",
			zap.Uint64("transfer_id", msg.TransferID),
			zap.Uint64("recipient_id", msg.RecipientID),
			zap.String("error", err.Error()))
		return
	}

	logger.Debug("[Dispatch] notification sent",
		zap.Uint64("transfer_id", msg.TransferID),
		zap.String("event", string(msg.Event)))
}

// Render builds the subject and body for an event.
func Render(msg model.TransferNotification) (string, string) {
	switch msg.Event {
	case constant.TransferEventCreated:
		return fmt.Sprintf("New transfer #%d", msg.TransferID),
			fmt.Sprintf("User %d wants to transfer %d item(s) to you. Accept or reject transfer #%d from your pending transfers.",
				msg.FromUserID, msg.ItemsCount, msg.TransferID)
	case constant.TransferEventAccepted:
		return fmt.Sprintf("Transfer #%d accepted", msg.TransferID),
			fmt.Sprintf("User %d accepted transfer #%d. %d item(s) were moved to their inventory.",
				msg.ActorID, msg.TransferID, msg.ItemsCount)
	case constant.TransferEventRejected:
		return fmt.Sprintf("Transfer #%d rejected", msg.TransferID),
			fmt.Sprintf("User %d rejected transfer #%d. %d item(s) were returned to the sender.",
				msg.ActorID, msg.TransferID, msg.ItemsCount)
	default:
		return fmt.Sprintf("Transfer #%d updated", msg.TransferID),
			fmt.Sprintf("Transfer #%d changed state.", msg.TransferID)
	}
}

// AsyncNotifier dispatches in the background when no broker is configured.
type AsyncNotifier struct {
	dispatcher *Dispatcher
	timeout    time.Duration
	wg         sync.WaitGroup
}

func NewAsyncNotifier(dispatcher *Dispatcher) *AsyncNotifier {
	return &AsyncNotifier{dispatcher: dispatcher, timeout: defaultDispatchTimeout}
}

// NotifyTransfer returns immediately. The dispatch outlives the request context.
func (n *AsyncNotifier) NotifyTransfer(_ context.Context, msg model.TransferNotification) error {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()
		n.dispatcher.Dispatch(ctx, msg)
	}()
	return nil
}

// Wait blocks until in-flight dispatches finish or ctx is done.
func (n *AsyncNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
