package service

import (
	"context"
	"io"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// The service layer depends on these slices of the REST client so tests can
// substitute hand-written fakes.

type CampaignAPI interface {
	List(ctx context.Context, f api.CampaignFilter) ([]model.Campaign, error)
	Get(ctx context.Context, id string) (*model.Campaign, error)
	Create(ctx context.Context, in model.CampaignInput) (*model.Campaign, error)
	Schedule(ctx context.Context, id string, at time.Time, timezone string) (*model.Campaign, error)
	Start(ctx context.Context, id string) error
	Pause(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*model.Campaign, error)
	Delete(ctx context.Context, id string) error
	Emails(ctx context.Context, id string, q api.EmailQuery) (*model.Page[model.CampaignEmail], error)
}

type TemplateAPI interface {
	List(ctx context.Context, f api.TemplateFilter) ([]model.Template, error)
	Get(ctx context.Context, id string) (*model.Template, error)
	Create(ctx context.Context, in model.TemplateInput) (*model.Template, error)
	Update(ctx context.Context, id string, in model.TemplateInput) (*model.Template, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*model.Template, error)
}

type CsvFileAPI interface {
	List(ctx context.Context, f api.CsvFileFilter) ([]model.CsvFile, error)
	Get(ctx context.Context, id string) (*model.CsvFile, error)
	Upload(ctx context.Context, filename, name string, r io.Reader) (*model.CsvFile, error)
	Contacts(ctx context.Context, id string, q api.ContactQuery) (*model.Page[model.CsvContact], error)
	FilterOptions(ctx context.Context, id string) (*model.FilterOptions, error)
	Filter(ctx context.Context, id string, req model.FilterRequest) (*model.CsvFile, error)
	Delete(ctx context.Context, id string) error
}

type AdvertisementAPI interface {
	List(ctx context.Context) ([]model.Advertisement, error)
	Get(ctx context.Context, id string) (*model.Advertisement, error)
	Create(ctx context.Context, in model.AdvertisementInput) (*model.Advertisement, error)
	Update(ctx context.Context, id string, in model.AdvertisementInput) (*model.Advertisement, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, id string, days int) (*model.AdDetailedStats, error)
	Dashboard(ctx context.Context) (*model.AdDashboardStats, error)
	TrackingLink(code string) string
}

type ReportAPI interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
	EmailPerformance(ctx context.Context, days int) ([]model.EmailPerformancePoint, error)
	Activity(ctx context.Context, limit int) ([]model.ActivityItem, error)
	CampaignReport(ctx context.Context, id string) (*model.CampaignReport, error)
}

type ImageAPI interface {
	List(ctx context.Context) ([]model.Image, error)
	Upload(ctx context.Context, filename string, r io.Reader) (*model.Image, error)
	Delete(ctx context.Context, filename string) error
}

type AuthAPI interface {
	SignIn(ctx context.Context, req api.SignInRequest) (*model.AuthResponse, error)
	SignUp(ctx context.Context, req api.SignUpRequest) (*model.AuthResponse, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*model.User, error)
	Profile(ctx context.Context) (*model.Profile, error)
}

var (
	_ CampaignAPI      = (*api.CampaignsAPI)(nil)
	_ TemplateAPI      = (*api.TemplatesAPI)(nil)
	_ CsvFileAPI       = (*api.CsvFilesAPI)(nil)
	_ AdvertisementAPI = (*api.AdvertisementsAPI)(nil)
	_ ReportAPI        = (*api.ReportsAPI)(nil)
	_ ImageAPI         = (*api.ImagesAPI)(nil)
	_ AuthAPI          = (*api.AuthAPI)(nil)
)
