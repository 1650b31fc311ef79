package service_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// Mock campaign API backed by a scripted sequence of Get results.
type mockCampaigns struct {
	mu        sync.Mutex
	gets      []*model.Campaign
	getErrs   []error
	getCalls  int
	emailsErr error
	emails    []model.CampaignEmail
	created   []model.CampaignInput
	scheduled []time.Time
	started   []string
	list      []model.Campaign
	filters   []api.CampaignFilter
}

func (m *mockCampaigns) Get(ctx context.Context, id string) (*model.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.getCalls
	m.getCalls++
	if i < len(m.getErrs) && m.getErrs[i] != nil {
		return nil, m.getErrs[i]
	}
	if i >= len(m.gets) {
		i = len(m.gets) - 1
	}
	c := *m.gets[i]
	return &c, nil
}

func (m *mockCampaigns) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
}

func (m *mockCampaigns) List(ctx context.Context, f api.CampaignFilter) ([]model.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filters = append(m.filters, f)
	return m.list, nil
}

func (m *mockCampaigns) Create(ctx context.Context, in model.CampaignInput) (*model.Campaign, error) {
	m.created = append(m.created, in)
	return &model.Campaign{ID: "new", Name: *in.Name, Status: model.CampaignDraft}, nil
}

func (m *mockCampaigns) Schedule(ctx context.Context, id string, at time.Time, tz string) (*model.Campaign, error) {
	m.scheduled = append(m.scheduled, at)
	return &model.Campaign{ID: id, Status: model.CampaignScheduled, ScheduledAt: &at}, nil
}

func (m *mockCampaigns) Start(ctx context.Context, id string) error {
	m.started = append(m.started, id)
	return nil
}

func (m *mockCampaigns) Pause(ctx context.Context, id string) error  { return nil }
func (m *mockCampaigns) Cancel(ctx context.Context, id string) error { return nil }
func (m *mockCampaigns) Delete(ctx context.Context, id string) error { return nil }

func (m *mockCampaigns) Duplicate(ctx context.Context, id string) (*model.Campaign, error) {
	return &model.Campaign{ID: id + "-copy"}, nil
}

func (m *mockCampaigns) Emails(ctx context.Context, id string, q api.EmailQuery) (*model.Page[model.CampaignEmail], error) {
	if m.emailsErr != nil {
		return nil, m.emailsErr
	}
	return &model.Page[model.CampaignEmail]{Data: m.emails}, nil
}

type mockTemplates struct {
	created []model.TemplateInput
}

func (m *mockTemplates) List(ctx context.Context, f api.TemplateFilter) ([]model.Template, error) {
	return nil, nil
}
func (m *mockTemplates) Get(ctx context.Context, id string) (*model.Template, error) {
	return &model.Template{ID: id}, nil
}
func (m *mockTemplates) Create(ctx context.Context, in model.TemplateInput) (*model.Template, error) {
	m.created = append(m.created, in)
	return &model.Template{ID: "t1", Name: *in.Name}, nil
}
func (m *mockTemplates) Update(ctx context.Context, id string, in model.TemplateInput) (*model.Template, error) {
	return &model.Template{ID: id}, nil
}
func (m *mockTemplates) Delete(ctx context.Context, id string) error { return nil }
func (m *mockTemplates) Duplicate(ctx context.Context, id string) (*model.Template, error) {
	return &model.Template{ID: id + "-copy"}, nil
}

type mockCsvFiles struct {
	file       model.CsvFile
	uploadName string
	filterReq  model.FilterRequest
	optCalls   int
}

func (m *mockCsvFiles) List(ctx context.Context, f api.CsvFileFilter) ([]model.CsvFile, error) {
	return []model.CsvFile{m.file}, nil
}
func (m *mockCsvFiles) Get(ctx context.Context, id string) (*model.CsvFile, error) {
	f := m.file
	return &f, nil
}
func (m *mockCsvFiles) Upload(ctx context.Context, filename, name string, r io.Reader) (*model.CsvFile, error) {
	m.uploadName = name
	return &model.CsvFile{ID: "c1", Name: name}, nil
}
func (m *mockCsvFiles) Contacts(ctx context.Context, id string, q api.ContactQuery) (*model.Page[model.CsvContact], error) {
	return &model.Page[model.CsvContact]{Pagination: model.Pagination{Page: q.Page, Limit: q.Limit}}, nil
}
func (m *mockCsvFiles) FilterOptions(ctx context.Context, id string) (*model.FilterOptions, error) {
	m.optCalls++
	return &model.FilterOptions{Countries: []string{"KE"}}, nil
}
func (m *mockCsvFiles) Filter(ctx context.Context, id string, req model.FilterRequest) (*model.CsvFile, error) {
	m.filterReq = req
	return &model.CsvFile{ID: "c2", IsFiltered: true}, nil
}
func (m *mockCsvFiles) Delete(ctx context.Context, id string) error { return nil }

type mockAds struct {
	created []model.AdvertisementInput
	updated []model.AdvertisementInput
}

func (m *mockAds) List(ctx context.Context) ([]model.Advertisement, error) { return nil, nil }
func (m *mockAds) Get(ctx context.Context, id string) (*model.Advertisement, error) {
	return &model.Advertisement{ID: id}, nil
}
func (m *mockAds) Create(ctx context.Context, in model.AdvertisementInput) (*model.Advertisement, error) {
	m.created = append(m.created, in)
	return &model.Advertisement{ID: "a1"}, nil
}
func (m *mockAds) Update(ctx context.Context, id string, in model.AdvertisementInput) (*model.Advertisement, error) {
	m.updated = append(m.updated, in)
	return &model.Advertisement{ID: id, IsActive: *in.IsActive}, nil
}
func (m *mockAds) Delete(ctx context.Context, id string) error { return nil }
func (m *mockAds) Stats(ctx context.Context, id string, days int) (*model.AdDetailedStats, error) {
	return &model.AdDetailedStats{PeriodDays: days}, nil
}
func (m *mockAds) Dashboard(ctx context.Context) (*model.AdDashboardStats, error) {
	return &model.AdDashboardStats{}, nil
}
func (m *mockAds) TrackingLink(code string) string { return "http://api.test/api/g/" + code }

type mockReports struct {
	dashboardErr error
}

func (m *mockReports) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	if m.dashboardErr != nil {
		return nil, m.dashboardErr
	}
	s := &model.DashboardStats{Templates: 3}
	return s, nil
}
func (m *mockReports) EmailPerformance(ctx context.Context, days int) ([]model.EmailPerformancePoint, error) {
	return make([]model.EmailPerformancePoint, days), nil
}
func (m *mockReports) Activity(ctx context.Context, limit int) ([]model.ActivityItem, error) {
	return nil, nil
}
func (m *mockReports) CampaignReport(ctx context.Context, id string) (*model.CampaignReport, error) {
	return &model.CampaignReport{}, nil
}

type mockImages struct{ images []model.Image }

func (m *mockImages) List(ctx context.Context) ([]model.Image, error) { return m.images, nil }
func (m *mockImages) Upload(ctx context.Context, filename string, r io.Reader) (*model.Image, error) {
	return &model.Image{Name: filename}, nil
}
func (m *mockImages) Delete(ctx context.Context, filename string) error { return nil }
