// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

// CampaignHandler serves JSON for scripts and pollers that track a campaign.
type CampaignHandler struct {
	Campaigns service.CampaignGetter
	Logger    *slog.Logger
}

func NewCampaignHandler(campaigns service.CampaignGetter, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{Campaigns: campaigns, Logger: logger}
}

// StatusResponse is the body of GET /campaigns/{id}/status.
type StatusResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Status   string              `json:"status"`
	Stats    model.CampaignStats `json:"stats"`
	Sent     int                 `json:"sent"`
	Total    int                 `json:"total"`
	Progress float64             `json:"progress"`
	// Polling tells clients whether to ask again in a few seconds.
	Polling bool `json:"polling"`
}

// GetCampaignStatusHandler returns the campaign's status and delivery stats.
func (h *CampaignHandler) GetCampaignStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	sent, total := c.Stats.Progress()
	resp := StatusResponse{
		ID:      c.ID,
		Name:    c.Name,
		Status:  c.Status,
		Stats:   c.Stats,
		Sent:    sent,
		Total:   total,
		Polling: c.IsSending(),
	}
	if total > 0 {
		resp.Progress = float64(sent) / float64(total)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CampaignHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	var apiErr *appErrors.APIError
	switch {
	case appErrors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		status = apiErr.Status
	case errors.Is(err, appErrors.ErrSessionExpired):
		status = http.StatusUnauthorized
	}
	if status >= 500 {
		h.Logger.Error("Failed to fetch campaign status", "error", err)
	}
	writeJSON(w, status, map[string]string{"message": appErrors.UserMessage(err, appErrors.DefaultMessage)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
