package queue_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
)

func newQueue() *queue.InMemoryQueue {
	q := queue.NewInMemoryQueue()
	q.RetryDelay = time.Millisecond
	return q
}

func TestPublishWithoutSubscribersFails(t *testing.T) {
	q := newQueue()
	assert.Error(t, q.Publish("nobody", 1))
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	q := newQueue()
	var mu sync.Mutex
	var got []string

	for _, name := range []string{"a", "b"} {
		require.NoError(t, q.Subscribe(queue.TopicCampaignStatus, func(payload any) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, name+":"+payload.(model.StatusEvent).To)
			return nil
		}))
	}

	require.NoError(t, q.Publish(queue.TopicCampaignStatus, model.StatusEvent{CampaignID: "c1", To: "sent"}))
	q.Wait()

	assert.ElementsMatch(t, []string{"a:sent", "b:sent"}, got)
}

func TestFailedHandlerIsRetried(t *testing.T) {
	q := newQueue()
	var calls int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("flaky")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHandlerGivesUpAfterMaxRetries(t *testing.T) {
	q := newQueue()
	q.MaxRetries = 2
	var calls int32
	require.NoError(t, q.Subscribe("t", func(payload any) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("always")
	}))

	require.NoError(t, q.Publish("t", "x"))
	q.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "first attempt plus two retries")
}

func TestForwardRelaysToDestination(t *testing.T) {
	src, dst := newQueue(), newQueue()
	received := make(chan any, 1)
	require.NoError(t, dst.Subscribe("t", func(payload any) error {
		received <- payload
		return nil
	}))
	require.NoError(t, queue.Forward(src, dst, "t"))

	require.NoError(t, src.Publish("t", 42))
	src.Wait()
	dst.Wait()

	assert.Equal(t, 42, <-received)
}

func TestStatusLogSubscriber(t *testing.T) {
	q := newQueue()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, queue.StartStatusLogSubscriber(q, logger))

	require.NoError(t, q.Publish(queue.TopicCampaignStatus, model.StatusEvent{
		CampaignID: "c1", Name: "Spring", From: "sending", To: "sent",
		Stats: model.CampaignStats{Total: 10, Sent: 10},
	}))
	require.NoError(t, q.Publish(queue.TopicCampaignStatus, "garbage"))
	q.Wait()

	out := buf.String()
	assert.Contains(t, out, "Campaign status changed")
	assert.Contains(t, out, "campaign_id=c1")
	assert.Contains(t, out, "to=sent")
	assert.Contains(t, out, "Invalid payload type")
}
