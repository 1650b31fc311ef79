package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func sending(sent int) *model.Campaign {
	return &model.Campaign{ID: "c1", Name: "Launch", Status: model.CampaignSending, Stats: model.CampaignStats{Total: 10, Sent: sent}}
}

func newWatcher(m *mockCampaigns, q queue.Queue) *service.CampaignWatcher {
	return service.NewCampaignWatcher(m, q, 5*time.Millisecond)
}

func TestWatchStopsWhenCampaignLeavesSending(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := &model.Campaign{ID: "c1", Name: "Launch", Status: model.CampaignSent, Stats: model.CampaignStats{Total: 10, Sent: 10}}
	m := &mockCampaigns{gets: []*model.Campaign{sending(0), sending(4), done}}

	q := queue.NewInMemoryQueue()
	var mu sync.Mutex
	var events []model.StatusEvent
	require.NoError(t, q.Subscribe(queue.TopicCampaignStatus, func(p any) error {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, p.(model.StatusEvent))
		return nil
	}))

	var seen []int
	last, err := newWatcher(m, q).Watch(context.Background(), "c1", func(c *model.Campaign) {
		seen = append(seen, c.Stats.Sent)
	})
	require.NoError(t, err)
	q.Wait()

	assert.Equal(t, model.CampaignSent, last.Status)
	assert.Equal(t, []int{0, 4, 10}, seen)
	assert.Equal(t, 3, m.calls())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, model.CampaignSending, events[0].From)
	assert.Equal(t, model.CampaignSent, events[0].To)
	assert.Equal(t, 10, events[0].Stats.Sent)
}

func TestWatchDoesNotPollIdleCampaign(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &mockCampaigns{gets: []*model.Campaign{{ID: "c1", Status: model.CampaignDraft}}}
	last, err := newWatcher(m, nil).Watch(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignDraft, last.Status)
	assert.Equal(t, 1, m.calls())
}

func TestWatchStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &mockCampaigns{gets: []*model.Campaign{sending(1)}}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	last, err := newWatcher(m, nil).Watch(ctx, "c1", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, last.IsSending())
	assert.Greater(t, m.calls(), 1)
}

func TestWatchSkipsTransientErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &mockCampaigns{
		gets:    []*model.Campaign{sending(0), nil, {ID: "c1", Status: model.CampaignPaused}},
		getErrs: []error{nil, errors.New("connection reset"), nil},
	}
	last, err := newWatcher(m, nil).Watch(context.Background(), "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignPaused, last.Status)
}

func TestWatchReturnsOnUnauthorized(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := &mockCampaigns{
		gets:    []*model.Campaign{sending(0), nil},
		getErrs: []error{nil, appErrors.NewAPIError(http.StatusUnauthorized, "Unauthorized")},
	}
	_, err := newWatcher(m, nil).Watch(context.Background(), "c1", nil)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Equal(t, 2, m.calls())
}
