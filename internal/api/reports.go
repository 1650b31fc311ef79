package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type ReportsAPI struct{ c *Client }

func (r *ReportsAPI) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := r.c.do(ctx, request{method: http.MethodGet, path: "/api/reports/dashboard"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmailPerformance returns one point per day; days <= 0 uses the backend default.
func (r *ReportsAPI) EmailPerformance(ctx context.Context, days int) ([]model.EmailPerformancePoint, error) {
	var out []model.EmailPerformancePoint
	err := r.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/reports/email-performance",
		params: query("days", itoa(days)),
	}, &out)
	return out, err
}

func (r *ReportsAPI) CampaignReport(ctx context.Context, id string) (*model.CampaignReport, error) {
	var out model.CampaignReport
	if err := r.c.do(ctx, request{method: http.MethodGet, path: path("/api/reports/campaigns/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportsAPI) Activity(ctx context.Context, limit int) ([]model.ActivityItem, error) {
	var out []model.ActivityItem
	err := r.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/reports/activity",
		params: query("limit", itoa(limit)),
	}, &out)
	return out, err
}

func (r *ReportsAPI) EmailDetails(ctx context.Context, id string) (*model.EmailDetails, error) {
	var out model.EmailDetails
	if err := r.c.do(ctx, request{method: http.MethodGet, path: path("/api/reports/emails/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportsAPI) Compare(ctx context.Context, ids []string) ([]model.CampaignReport, error) {
	var out []model.CampaignReport
	err := r.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/reports/compare",
		params: query("ids", strings.Join(ids, ",")),
	}, &out)
	return out, err
}

// ExportCampaignReport returns the export document as the backend sent it.
func (r *ReportsAPI) ExportCampaignReport(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.do(ctx, request{method: http.MethodGet, path: path("/api/reports/campaigns/%s/export", id)}, &out)
	return out, err
}
