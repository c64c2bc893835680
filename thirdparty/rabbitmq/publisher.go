package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/marketplace/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "transfer_notification_exchange"
	queueName    = "transfer_notification_queue"
	routingKey   = "transfer_notification"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	timeout time.Duration
}

func NewPublisher(url string, timeout time.Duration) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, timeout: timeout}, nil
}

// dial opens a channel and declares the notification topology. Publisher and
// consumer both declare it so either can start first.
func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // auto-delete
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		queueName,    // queue name
		routingKey,   // routing key
		exchangeName, // exchange
		false,        // no-wait
		nil,          // arguments
	)
}

// NotifyTransfer publishes the event for the consumer to deliver. The publish is
// bounded by the configured timeout rather than the request context.
func (p *Publisher) NotifyTransfer(_ context.Context, msg model.TransferNotification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		exchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
