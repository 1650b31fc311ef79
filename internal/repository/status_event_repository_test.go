package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/db"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
)

func TestStatusEventHistory(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, dsn)
	require.NoError(t, err)
	defer conn.Close()

	repo := &repository.StatusEventRepository{DB: conn}
	id := uuid.NewString()
	start := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Insert(ctx, model.StatusEvent{
		CampaignID: id, Name: "Launch", From: model.CampaignScheduled, To: model.CampaignSending,
		Stats: model.CampaignStats{Total: 10}, ObservedAt: start,
	}))
	require.NoError(t, repo.Insert(ctx, model.StatusEvent{
		CampaignID: id, Name: "Launch", From: model.CampaignSending, To: model.CampaignSent,
		Stats: model.CampaignStats{Total: 10, Sent: 10}, ObservedAt: start.Add(time.Minute),
	}))

	history, err := repo.History(ctx, id, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.CampaignSent, history[0].To)
	assert.Equal(t, 10, history[0].Stats.Sent)
	assert.Equal(t, model.CampaignSending, history[1].To)

	latest, err := repo.History(ctx, id, 1)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
