package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func TestUploadDefaultsNameToFilename(t *testing.T) {
	m := &mockCsvFiles{}
	s := &service.CSVService{CsvFiles: m}

	_, err := s.Upload(context.Background(), "leads-march.CSV", "  ", strings.NewReader("email\n"))
	require.NoError(t, err)
	assert.Equal(t, "leads-march", m.uploadName)

	_, err = s.Upload(context.Background(), "leads.csv", "Q1 leads", strings.NewReader("email\n"))
	require.NoError(t, err)
	assert.Equal(t, "Q1 leads", m.uploadName)
}

func TestDefaultListName(t *testing.T) {
	assert.Equal(t, "contacts", service.DefaultListName("/tmp/contacts.csv"))
	assert.Equal(t, "contacts.txt", service.DefaultListName("contacts.txt"))
}

func TestCsvDetailLoadsFilterOptionsForReadyOriginals(t *testing.T) {
	m := &mockCsvFiles{file: model.CsvFile{ID: "c1", Status: model.CsvReady}}
	s := &service.CSVService{CsvFiles: m}

	d, err := s.Detail(context.Background(), "c1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Contacts.Pagination.Page)
	assert.Equal(t, service.ContactsPageSize, d.Contacts.Pagination.Limit)
	assert.Equal(t, []string{"KE"}, d.Options.Countries)

	m.file.IsFiltered = true
	d, err = s.Detail(context.Background(), "c1", 2)
	require.NoError(t, err)
	assert.Nil(t, d.Options)
	assert.Equal(t, 1, m.optCalls)
}

func TestFilterDropsBlankCriteria(t *testing.T) {
	m := &mockCsvFiles{}
	s := &service.CSVService{CsvFiles: m}

	_, err := s.Filter(context.Background(), "c1", form.CsvFilter{
		Name: " Kenya ", Countries: []string{"KE", " "}, Timezones: []string{""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Kenya", m.filterReq.Name)
	assert.Equal(t, []string{"KE"}, m.filterReq.Countries)
	assert.Nil(t, m.filterReq.Timezones)
}

func TestAutofillUTM(t *testing.T) {
	tests := []struct {
		name                     string
		in                       form.Advertisement
		source, medium, campaign string
	}{
		{"no platform", form.Advertisement{Name: "Spring Sale 2025!"}, "direct", "cpc", "spring-sale-2025"},
		{"social", form.Advertisement{Name: "Launch", Platform: "Facebook Ads"}, "facebook-ads", "cpc", "launch"},
		{"email platform", form.Advertisement{Name: "News", Platform: "Email Newsletter"}, "email-newsletter", "email", "news"},
		{"keeps explicit values", form.Advertisement{Name: "X", UTMSource: "partner", UTMMedium: "banner", UTMCampaign: "q1"}, "partner", "banner", "q1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.AutofillUTM(tt.in)
			assert.Equal(t, tt.source, got.UTMSource)
			assert.Equal(t, tt.medium, got.UTMMedium)
			assert.Equal(t, tt.campaign, got.UTMCampaign)
		})
	}
}

func TestAutofillUTMNeedsName(t *testing.T) {
	got := service.AutofillUTM(form.Advertisement{Platform: "Google"})
	assert.Empty(t, got.UTMSource)
}

func TestCreateAdvertisement(t *testing.T) {
	m := &mockAds{}
	s := &service.AdvertisementService{Ads: m, Validator: form.NewValidator()}

	_, err := s.Create(context.Background(), form.Advertisement{Name: "Launch", DestinationURL: "ftp://x"})
	require.Error(t, err)

	_, err = s.Create(context.Background(), form.Advertisement{Name: "Launch", DestinationURL: "https://example.com"})
	require.NoError(t, err)
	require.Len(t, m.created, 1)
	assert.Equal(t, "launch", *m.created[0].UTMCampaign)
	assert.Nil(t, m.created[0].Platform)
}

func TestToggleActive(t *testing.T) {
	m := &mockAds{}
	s := &service.AdvertisementService{Ads: m}

	ad, err := s.ToggleActive(context.Background(), &model.Advertisement{ID: "a1", IsActive: true})
	require.NoError(t, err)
	assert.False(t, ad.IsActive)
	assert.Equal(t, "http://api.test/api/g/abc", s.TrackingLink(&model.Advertisement{TrackingCode: "abc"}))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "0.0", service.Rate(5, 0))
	assert.Equal(t, "33.3", service.Rate(1, 3))
	assert.Equal(t, "100.0", service.Rate(4, 4))
}

func TestOverviewLoadsEverything(t *testing.T) {
	s := &service.ReportService{Reports: &mockReports{}, Campaigns: &mockCampaigns{list: []model.Campaign{{ID: "c1"}}}}
	o, err := s.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, o.Stats.Templates)
	assert.Len(t, o.Performance, service.PerformanceDays)
	assert.Len(t, o.Campaigns, 1)
}

func TestReportsListsSentCampaigns(t *testing.T) {
	m := &mockCampaigns{}
	s := &service.ReportService{Reports: &mockReports{}, Campaigns: m}
	_, err := s.ReportsPage(context.Background())
	require.NoError(t, err)
	require.Len(t, m.filters, 1)
	assert.Equal(t, model.CampaignSent, m.filters[0].Status)
}

func TestReportsFailsWithDashboard(t *testing.T) {
	s := &service.ReportService{Reports: &mockReports{dashboardErr: errors.New("down")}, Campaigns: &mockCampaigns{}}
	_, err := s.ReportsPage(context.Background())
	assert.EqualError(t, err, "down")
}

func TestImageSearchIgnoresCase(t *testing.T) {
	s := &service.ImageService{Images: &mockImages{images: []model.Image{{Name: "Hero.png"}, {Name: "logo.svg"}}}}

	got, err := s.List(context.Background(), "HERO")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hero.png", got[0].Name)

	all, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "-", service.FormatSize(0))
	assert.Equal(t, "512 B", service.FormatSize(512))
	assert.Equal(t, "1.5 KB", service.FormatSize(1536))
	assert.Equal(t, "2.0 MB", service.FormatSize(2*1024*1024))
}
