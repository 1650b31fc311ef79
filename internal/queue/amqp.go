package queue

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// AMQPQueue publishes and consumes status events on one durable RabbitMQ queue.
// The message type header carries the topic.
type AMQPQueue struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func DialAMQP(url, queueName string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to queue: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open queue channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPQueue{conn: conn, ch: ch, queue: q.Name}, nil
}

func (a *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ch.Publish(
		"",
		a.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         topic,
			Body:         body,
		},
	)
}

// Subscribe consumes deliveries whose type is topic, decoding campaign status
// events into model.StatusEvent. A handler error drops the message.
func (a *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	a.mu.Lock()
	deliveries, err := a.ch.Consume(a.queue, "", false, false, false, false, nil)
	a.mu.Unlock()
	if err != nil {
		return fmt.Errorf("consume %s: %w", a.queue, err)
	}

	go func() {
		for d := range deliveries {
			HandleDelivery(a.queue, topic, d, handler)
		}
		slog.Info("Queue consumer stopped", "queue", a.queue)
	}()
	return nil
}

// HandleDelivery settles one delivery. Messages of another type, undecodable
// bodies and handler failures are rejected without requeue so a shared queue
// never redelivers them in a loop.
func HandleDelivery(queueName, topic string, d amqp.Delivery, handler func(payload any) error) {
	if d.Type != "" && d.Type != topic {
		slog.Warn("Dropping message of foreign type", "queue", queueName, "type", d.Type)
		d.Nack(false, false)
		return
	}
	payload, err := decodeDelivery(topic, d.Body)
	if err != nil {
		slog.Warn("Dropping undecodable message", "queue", queueName, "error", err)
		d.Nack(false, false)
		return
	}
	if err := handler(payload); err != nil {
		slog.Warn("Handler failed, dropping message", "queue", queueName, "error", err)
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}

func decodeDelivery(topic string, body []byte) (any, error) {
	if topic != TopicCampaignStatus {
		var raw map[string]any
		err := json.Unmarshal(body, &raw)
		return raw, err
	}
	var ev model.StatusEvent
	err := json.Unmarshal(body, &ev)
	return ev, err
}

// NotifyClose reports broker-side connection loss.
func (a *AMQPQueue) NotifyClose() <-chan *amqp.Error {
	return a.conn.NotifyClose(make(chan *amqp.Error, 1))
}

func (a *AMQPQueue) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ch.Close(); err != nil {
		a.conn.Close()
		return err
	}
	return a.conn.Close()
}

var (
	_ Queue = (*InMemoryQueue)(nil)
	_ Queue = (*AMQPQueue)(nil)
)
