package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// DefaultStatsDays is the stats window of the advertisement detail page.
const DefaultStatsDays = 30

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

type AdvertisementService struct {
	Ads       AdvertisementAPI
	Validator *form.Validator
}

func (s *AdvertisementService) List(ctx context.Context) ([]model.Advertisement, error) {
	return s.Ads.List(ctx)
}

func (s *AdvertisementService) Get(ctx context.Context, id string) (*model.Advertisement, error) {
	return s.Ads.Get(ctx, id)
}

func (s *AdvertisementService) Dashboard(ctx context.Context) (*model.AdDashboardStats, error) {
	return s.Ads.Dashboard(ctx)
}

func (s *AdvertisementService) Stats(ctx context.Context, id string, days int) (*model.AdDetailedStats, error) {
	if days <= 0 {
		days = DefaultStatsDays
	}
	return s.Ads.Stats(ctx, id, days)
}

// Create validates the form and fills blank UTM fields from the name and
// platform before saving.
func (s *AdvertisementService) Create(ctx context.Context, f form.Advertisement) (*model.Advertisement, error) {
	if err := s.Validator.Validate(f); err != nil {
		return nil, err
	}
	f = AutofillUTM(f)
	return s.Ads.Create(ctx, model.AdvertisementInput{
		Name:           ptr(strings.TrimSpace(f.Name)),
		DestinationURL: ptr(strings.TrimSpace(f.DestinationURL)),
		Description:    optional(f.Description),
		Platform:       optional(f.Platform),
		UTMSource:      optional(f.UTMSource),
		UTMMedium:      optional(f.UTMMedium),
		UTMCampaign:    optional(f.UTMCampaign),
	})
}

// ToggleActive flips the advertisement's active flag.
func (s *AdvertisementService) ToggleActive(ctx context.Context, ad *model.Advertisement) (*model.Advertisement, error) {
	active := !ad.IsActive
	return s.Ads.Update(ctx, ad.ID, model.AdvertisementInput{IsActive: &active})
}

func (s *AdvertisementService) Delete(ctx context.Context, id string) error {
	return s.Ads.Delete(ctx, id)
}

func (s *AdvertisementService) TrackingLink(ad *model.Advertisement) string {
	return s.Ads.TrackingLink(ad.TrackingCode)
}

// AutofillUTM sets utm_source from the platform (or "direct"), utm_medium to
// email or cpc, and utm_campaign to the slugged name. Fields already set are
// kept.
func AutofillUTM(f form.Advertisement) form.Advertisement {
	if strings.TrimSpace(f.Name) == "" {
		return f
	}
	platform := strings.ToLower(strings.TrimSpace(f.Platform))
	if f.UTMSource == "" {
		if platform != "" {
			f.UTMSource = Slug(platform)
		} else {
			f.UTMSource = "direct"
		}
	}
	if f.UTMMedium == "" {
		if strings.Contains(platform, "email") {
			f.UTMMedium = "email"
		} else {
			f.UTMMedium = "cpc"
		}
	}
	if f.UTMCampaign == "" {
		f.UTMCampaign = Slug(f.Name)
	}
	return f
}

// Slug lowercases s and joins its alphanumeric runs with "-".
func Slug(s string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
