package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler delivers one decoded notification.
type Handler interface {
	Dispatch(ctx context.Context, msg model.TransferNotification)
}

type Consumer struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	handler  Handler
	timeout  time.Duration
	finished chan struct{}
}

func NewConsumer(url string, handler Handler, timeout time.Duration) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:     conn,
		channel:  channel,
		handler:  handler,
		timeout:  timeout,
		finished: make(chan struct{}),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		defer close(c.finished)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(msg)
			}
		}
	}()

	return nil
}

// handle always acks. Delivery failures are logged by the dispatcher and not retried.
func (c *Consumer) handle(msg amqp091.Delivery) {
	defer func() {
		_ = msg.Ack(false)
	}()

	var notification model.TransferNotification
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		logger.Warn("[Consumer] malformed notification", zap.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	c.handler.Dispatch(ctx, notification)
}

// Close stops consuming and waits for the in-flight message, if any.
func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	select {
	case <-c.finished:
	case <-time.After(c.timeout):
	}
	return nil
}
