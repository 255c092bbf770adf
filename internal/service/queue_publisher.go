// Package service publishes domain events to RabbitMQ.  Publishing is
// best-effort: errors are logged and returned so callers can choose
// to ignore them without failing the request.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/almhaga/brf-intranet/internal/queue"
)

// PublishBookingConfirmed sends a BookingConfirmedEvent to the durable
// booking.confirmed queue with persistent delivery.
func PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error {
	conn, err := amqp.Dial(queue.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare("booking.confirmed", true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", "booking.confirmed", false, false, pub); err != nil {
		log.Printf("rabbitmq: publish: %v", err)
		return err
	}
	return nil
}
