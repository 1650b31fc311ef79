package api

import (
	"context"
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type AdvertisementsAPI struct{ c *Client }

func (a *AdvertisementsAPI) List(ctx context.Context) ([]model.Advertisement, error) {
	var out []model.Advertisement
	err := a.c.do(ctx, request{method: http.MethodGet, path: "/api/advertisements"}, &out)
	return out, err
}

func (a *AdvertisementsAPI) Get(ctx context.Context, id string) (*model.Advertisement, error) {
	var out model.Advertisement
	if err := a.c.do(ctx, request{method: http.MethodGet, path: path("/api/advertisements/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdvertisementsAPI) Create(ctx context.Context, in model.AdvertisementInput) (*model.Advertisement, error) {
	var out model.Advertisement
	if err := a.c.do(ctx, request{method: http.MethodPost, path: "/api/advertisements", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdvertisementsAPI) Update(ctx context.Context, id string, in model.AdvertisementInput) (*model.Advertisement, error) {
	var out model.Advertisement
	if err := a.c.do(ctx, request{method: http.MethodPatch, path: path("/api/advertisements/%s", id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdvertisementsAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, request{method: http.MethodDelete, path: path("/api/advertisements/%s", id)}, nil)
}

// Stats returns click analytics over the last days days.
func (a *AdvertisementsAPI) Stats(ctx context.Context, id string, days int) (*model.AdDetailedStats, error) {
	var out model.AdDetailedStats
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   path("/api/advertisements/%s/stats", id),
		params: query("days", itoa(days)),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdvertisementsAPI) Dashboard(ctx context.Context) (*model.AdDashboardStats, error) {
	var out model.AdDashboardStats
	if err := a.c.do(ctx, request{method: http.MethodGet, path: "/api/advertisements/dashboard"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TrackingLink is the public redirect URL the backend counts clicks on.
func (a *AdvertisementsAPI) TrackingLink(code string) string {
	return a.c.baseURL + path("/api/g/%s", code)
}
