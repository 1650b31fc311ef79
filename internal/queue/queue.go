package queue

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// TopicCampaignStatus carries model.StatusEvent payloads.
const TopicCampaignStatus = "campaign_status"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans each message out to every subscriber of its topic,
// retrying failed handlers with a growing delay.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	wg         sync.WaitGroup
	MaxRetries int
	RetryDelay time.Duration
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Topic      string
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := append([]func(payload any) error(nil), q.handlers[topic]...)
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{Topic: topic, Payload: payload, MaxRetries: q.MaxRetries}
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.processJob(handler, job)
		}()
	}
	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for {
		err := handler(job.Payload)
		if err == nil {
			return
		}

		job.RetryCount++
		slog.Warn("Job failed", "topic", job.Topic, "attempt", job.RetryCount, "max_retries", job.MaxRetries, "error", err)

		if job.RetryCount > job.MaxRetries {
			slog.Error("Job permanently failed", "topic", job.Topic, "attempts", job.RetryCount)
			return
		}

		time.Sleep(time.Duration(job.RetryCount) * q.RetryDelay)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every in-flight job has finished, including retries.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// StartStatusLogSubscriber logs every campaign status change.
func StartStatusLogSubscriber(q Queue, logger *slog.Logger) error {
	return q.Subscribe(TopicCampaignStatus, func(payload any) error {
		ev, ok := payload.(model.StatusEvent)
		if !ok {
			logger.Warn("Invalid payload type, expected StatusEvent", "type", fmt.Sprintf("%T", payload))
			return nil // no retry
		}
		sent, total := ev.Stats.Progress()
		logger.Info("Campaign status changed",
			"campaign_id", ev.CampaignID,
			"name", ev.Name,
			"from", ev.From,
			"to", ev.To,
			"sent", sent,
			"total", total,
		)
		return nil
	})
}

// Forward relays every message on topic from src to dst, e.g. from the
// in-process queue to a broker.
func Forward(src Queue, dst Queue, topic string) error {
	return src.Subscribe(topic, func(payload any) error {
		return dst.Publish(topic, payload)
	})
}
