package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/handler"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type stubCampaigns struct {
	campaign *model.Campaign
	err      error
}

func (s stubCampaigns) Get(ctx context.Context, id string) (*model.Campaign, error) {
	return s.campaign, s.err
}

func serve(t *testing.T, stub stubCampaigns) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.NewCampaignHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Get("/campaigns/{id}/status", h.GetCampaignStatusHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/c1/status", nil))
	return rec
}

func TestCampaignStatusWhileSending(t *testing.T) {
	rec := serve(t, stubCampaigns{campaign: &model.Campaign{
		ID: "c1", Name: "Launch", Status: model.CampaignSending,
		Stats: model.CampaignStats{Total: 8, Sent: 2, Delivered: 2},
	}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp handler.StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.CampaignSending, resp.Status)
	assert.True(t, resp.Polling)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 8, resp.Total)
	assert.InDelta(t, 0.25, resp.Progress, 1e-9)
}

func TestCampaignStatusStopsPollingWhenDone(t *testing.T) {
	rec := serve(t, stubCampaigns{campaign: &model.Campaign{ID: "c1", Status: model.CampaignSent}})

	var resp handler.StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Polling)
	assert.Zero(t, resp.Progress)
}

func TestCampaignStatusPassesThroughClientErrors(t *testing.T) {
	rec := serve(t, stubCampaigns{err: appErrors.NewAPIError(http.StatusConflict, "Campaign is locked")})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Campaign is locked"}`, rec.Body.String())
}

func TestCampaignStatusNotFound(t *testing.T) {
	rec := serve(t, stubCampaigns{err: appErrors.NewNotFound("/api/campaigns/c9", "Campaign not found")})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Campaign not found"}`, rec.Body.String())
}

func TestCampaignStatusExpiredSession(t *testing.T) {
	rec := serve(t, stubCampaigns{err: appErrors.ErrSessionExpired})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCampaignStatusBackendDown(t *testing.T) {
	rec := serve(t, stubCampaigns{err: io.ErrUnexpectedEOF})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"message":"An error occurred"}`, rec.Body.String())
}
