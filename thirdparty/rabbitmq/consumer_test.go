package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ackRecorder struct {
	acked, nacked int
}

func (a *ackRecorder) Ack(uint64, bool) error { a.acked++; return nil }

func (a *ackRecorder) Nack(uint64, bool, bool) error { a.nacked++; return nil }

func (a *ackRecorder) Reject(uint64, bool) error { a.nacked++; return nil }

type handlerFunc func(ctx context.Context, msg model.TransferNotification)

func (f handlerFunc) Dispatch(ctx context.Context, msg model.TransferNotification) { f(ctx, msg) }

func TestConsumer_Handle(t *testing.T) {
	var got []model.TransferNotification
	c := &Consumer{
		timeout: time.Second,
		handler: handlerFunc(func(_ context.Context, msg model.TransferNotification) {
			got = append(got, msg)
		}),
	}

	body, err := json.Marshal(model.TransferNotification{Event: constant.TransferEventCreated, TransferID: 7, RecipientID: 2})
	require.NoError(t, err)

	ack := &ackRecorder{}
	c.handle(amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body})
	c.handle(amqp091.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("{not json")})

	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].TransferID)
	assert.Equal(t, constant.TransferEventCreated, got[0].Event)
	// malformed messages are acked too
	assert.Equal(t, 2, ack.acked)
	assert.Zero(t, ack.nacked)
}
