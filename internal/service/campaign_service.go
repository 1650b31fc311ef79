// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// DetailEmailLimit is how many recipient rows the detail view shows.
const DetailEmailLimit = 50

type CampaignService struct {
	Campaigns CampaignAPI
	Validator *form.Validator
	Logger    *slog.Logger
}

type CampaignDetails struct {
	Campaign *model.Campaign
	Emails   []model.CampaignEmail
	// EmailsErr is set when only the recipient list failed to load.
	EmailsErr error
}

func (s *CampaignService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *CampaignService) List(ctx context.Context, status, search string) ([]model.Campaign, error) {
	return s.Campaigns.List(ctx, api.CampaignFilter{Status: status, Search: search})
}

// Detail loads the campaign and its first recipients in parallel. A failed
// recipient load is reported in EmailsErr rather than failing the page.
func (s *CampaignService) Detail(ctx context.Context, id string) (*CampaignDetails, error) {
	details := &CampaignDetails{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := s.Campaigns.Get(gctx, id)
		if err != nil {
			return err
		}
		details.Campaign = c
		return nil
	})
	g.Go(func() error {
		page, err := s.Campaigns.Emails(gctx, id, api.EmailQuery{Limit: DetailEmailLimit})
		if err != nil {
			s.logger().Warn("Failed to load campaign emails", "campaign_id", id, "error", err)
			details.EmailsErr = err
			return nil
		}
		details.Emails = page.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// Create validates the form, creates the campaign and, unless it is sent
// immediately, schedules it in the chosen timezone.
func (s *CampaignService) Create(ctx context.Context, f form.Campaign) (*model.Campaign, error) {
	if err := s.Validator.Validate(f); err != nil {
		return nil, err
	}

	in := model.CampaignInput{
		Name:      ptr(strings.TrimSpace(f.Name)),
		FromName:  ptr(strings.TrimSpace(f.FromName)),
		FromEmail: ptr(strings.TrimSpace(f.FromEmail)),
		SendOptions: map[string]any{
			"timezone":        f.Timezone,
			"sendImmediately": f.SendImmediately,
		},
		Description: optional(f.Description),
		TemplateID:  optional(f.TemplateID),
		CsvFileID:   optional(f.CsvFileID),
		ReplyTo:     optional(f.ReplyTo),
	}

	if f.SendImmediately {
		return s.Campaigns.Create(ctx, in)
	}

	at, err := f.ScheduledAt()
	if err != nil {
		return nil, err
	}
	c, err := s.Campaigns.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	scheduled, err := s.Campaigns.Schedule(ctx, c.ID, at, f.Timezone)
	if err != nil {
		return c, fmt.Errorf("schedule campaign %s: %w", c.ID, err)
	}
	return scheduled, nil
}

var startRequirement = map[string]string{
	"template": "template",
	"csv_file": "contact list",
}

// Start refuses campaigns without a template or contact list before asking
// the backend to begin sending.
func (s *CampaignService) Start(ctx context.Context, id string) error {
	c, err := s.Campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if missing := c.MissingForStart(); len(missing) > 0 {
		return fmt.Errorf("%w: select a %s first", appErrors.ErrCampaignNotStartable, startRequirement[missing[0]])
	}
	if err := s.Campaigns.Start(ctx, id); err != nil {
		return err
	}
	s.logger().Info("Campaign started", "campaign_id", id)
	return nil
}

func (s *CampaignService) Pause(ctx context.Context, id string) error {
	return s.Campaigns.Pause(ctx, id)
}

func (s *CampaignService) Cancel(ctx context.Context, id string) error {
	return s.Campaigns.Cancel(ctx, id)
}

func (s *CampaignService) Duplicate(ctx context.Context, id string) (*model.Campaign, error) {
	return s.Campaigns.Duplicate(ctx, id)
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	return s.Campaigns.Delete(ctx, id)
}

// Actions lists the lifecycle actions the dashboard offers for a status.
func Actions(status string) []string {
	switch status {
	case model.CampaignDraft, model.CampaignScheduled:
		return []string{"start", "cancel"}
	case model.CampaignSending:
		return []string{"pause", "cancel"}
	case model.CampaignPaused:
		return []string{"start", "cancel"}
	default:
		return nil
	}
}

func validationFor(field, message string) *appErrors.ValidationError {
	ve := &appErrors.ValidationError{}
	ve.Add(field, message)
	return ve
}

func ptr[T any](v T) *T { return &v }

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
