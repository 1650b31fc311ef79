package main

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
)

type mockRecorder struct {
	mu     sync.Mutex
	events []model.StatusEvent
	fails  int
}

func (m *mockRecorder) Insert(ctx context.Context, ev model.StatusEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails > 0 {
		m.fails--
		return errors.New("connection reset")
	}
	m.events = append(m.events, ev)
	return nil
}

func (m *mockRecorder) recorded() []model.StatusEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.StatusEvent(nil), m.events...)
}

func publishWhenReady(t *testing.T, q queue.Queue, ev model.StatusEvent) {
	t.Helper()
	require.Eventually(t, func() bool {
		return q.Publish(queue.TopicCampaignStatus, ev) == nil
	}, time.Second, 5*time.Millisecond)
}

func TestWorkerLogsAndRecordsStatusEvents(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logs, "json", "info")

	broker := queue.NewInMemoryQueue()
	broker.RetryDelay = time.Millisecond
	rec := &mockRecorder{fails: 1}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, broker, rec, nil, logger) }()

	publishWhenReady(t, broker, model.StatusEvent{
		CampaignID: "c1", Name: "Launch", From: "sending", To: "sent",
		Stats: model.CampaignStats{Total: 3, Sent: 3}, ObservedAt: time.Now(),
	})

	require.Eventually(t, func() bool { return len(rec.recorded()) == 1 }, 5*time.Second, 10*time.Millisecond)
	broker.Wait()
	cancel()
	require.NoError(t, <-done)

	got := rec.recorded()[0]
	assert.Equal(t, "c1", got.CampaignID)
	assert.Equal(t, "sent", got.To)
	assert.Contains(t, logs.String(), `"msg":"Campaign status changed"`)
	assert.Contains(t, logs.String(), `"campaign_id":"c1"`)
}

func TestWorkerWithoutRecorderOnlyLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logs, "json", "info")
	broker := queue.NewInMemoryQueue()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, broker, nil, nil, logger) }()

	publishWhenReady(t, broker, model.StatusEvent{CampaignID: "c2", From: "sending", To: "paused"})
	broker.Wait()
	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, logs.String(), `"to":"paused"`)
}

func TestWorkerStopsWhenBrokerConnectionDrops(t *testing.T) {
	logger := logging.NewWithWriter(&bytes.Buffer{}, "text", "error")
	closed := make(chan *amqp.Error, 1)
	closed <- &amqp.Error{Code: 320, Reason: "CONNECTION_FORCED"}

	err := run(context.Background(), queue.NewInMemoryQueue(), nil, closed, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONNECTION_FORCED")
}
