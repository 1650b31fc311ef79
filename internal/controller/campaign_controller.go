// internal/controller/campaign_controller.go
package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func (c *Controller) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	campaigns, err := c.Campaigns.List(r.Context(), status, search)
	if err != nil {
		c.failPage(w, r, err, "Failed to load campaigns")
		return
	}
	c.render(w, http.StatusOK, view.CampaignsPage(c.props(w, r), campaigns, status, search))
}

func (c *Controller) NewCampaign(w http.ResponseWriter, r *http.Request) {
	c.campaignForm(w, r, http.StatusOK, form.Campaign{SendImmediately: true}, nil)
}

func (c *Controller) campaignForm(w http.ResponseWriter, r *http.Request, status int, f form.Campaign, errs view.FieldErrors) {
	templates, lists, err := c.campaignChoices(r.Context())
	if err != nil {
		c.failPage(w, r, err, "Failed to load templates and contact lists")
		return
	}
	c.render(w, status, view.NewCampaignPage(c.props(w, r), f, templates, lists, errs))
}

func (c *Controller) campaignChoices(ctx context.Context) ([]model.Template, []model.CsvFile, error) {
	templates, err := c.Templates.Templates.List(ctx, api.TemplateFilter{IsActive: "true"})
	if err != nil {
		return nil, nil, err
	}
	lists, err := c.CSV.CsvFiles.List(ctx, api.CsvFileFilter{Status: model.CsvReady})
	if err != nil {
		return nil, nil, err
	}
	return templates, lists, nil
}

func (c *Controller) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	f := form.Campaign{
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		TemplateID:      r.FormValue("template_id"),
		CsvFileID:       r.FormValue("csv_file_id"),
		FromName:        r.FormValue("from_name"),
		FromEmail:       r.FormValue("from_email"),
		ReplyTo:         r.FormValue("reply_to"),
		SendImmediately: r.FormValue("send_immediately") == "true",
		ScheduledDate:   r.FormValue("scheduled_date"),
		ScheduledTime:   r.FormValue("scheduled_time"),
		Timezone:        r.FormValue("timezone"),
	}

	campaign, err := c.Campaigns.Create(r.Context(), f)
	if err != nil {
		if errs, ok := fieldErrors(err); ok {
			c.campaignForm(w, r, http.StatusUnprocessableEntity, f, errs)
			return
		}
		if campaign != nil {
			// created but not scheduled
			c.fail(w, r, err, "/campaigns/"+campaign.ID, "Campaign created but could not be scheduled")
			return
		}
		c.fail(w, r, err, "/campaigns/new", "Failed to create campaign")
		return
	}
	c.Logger.Info("Campaign created", "campaign_id", campaign.ID, "status", campaign.Status)
	c.Sessions.FlashSuccess(w, r, "Campaign created")
	c.redirect(w, r, "/campaigns/"+campaign.ID)
}

func (c *Controller) ShowCampaign(w http.ResponseWriter, r *http.Request) {
	d, err := c.Campaigns.Detail(r.Context(), idParam(r))
	if err != nil {
		c.failPage(w, r, err, "Failed to load campaign")
		return
	}
	c.render(w, http.StatusOK, view.CampaignPage(c.props(w, r), d, c.PollInterval))
}

// CampaignProgress serves the fragment the detail page polls while sending.
func (c *Controller) CampaignProgress(w http.ResponseWriter, r *http.Request) {
	campaign, err := c.Campaigns.Campaigns.Get(r.Context(), idParam(r))
	if err != nil {
		if expired(err) {
			// htmx follows this header with a full navigation
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		c.Logger.Warn("Progress poll failed", "campaign_id", idParam(r), "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	c.render(w, http.StatusOK, view.CampaignProgress(campaign, c.PollInterval))
}

// campaignAction runs a lifecycle call and reports the outcome on the
// detail page.
func (c *Controller) campaignAction(do func(ctx context.Context, id string) error, success, failure string, then ...func(*http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := idParam(r)
		if err := do(r.Context(), id); err != nil {
			c.fail(w, r, err, "/campaigns/"+id, failure)
			return
		}
		for _, f := range then {
			f(r, id)
		}
		c.Logger.Info(success, "campaign_id", id)
		c.Sessions.FlashSuccess(w, r, success)
		c.redirect(w, r, "/campaigns/"+id)
	}
}

func (c *Controller) StartCampaign() http.HandlerFunc {
	return c.campaignAction(c.Campaigns.Start, "Campaign started", "Failed to start campaign", c.watch)
}

func (c *Controller) PauseCampaign() http.HandlerFunc {
	return c.campaignAction(c.Campaigns.Pause, "Campaign paused", "Failed to pause campaign")
}

func (c *Controller) CancelCampaign() http.HandlerFunc {
	return c.campaignAction(c.Campaigns.Cancel, "Campaign cancelled", "Failed to cancel campaign")
}

func (c *Controller) DuplicateCampaign(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	dup, err := c.Campaigns.Duplicate(r.Context(), id)
	if err != nil {
		c.fail(w, r, err, "/campaigns/"+id, "Failed to duplicate campaign")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Campaign duplicated")
	c.redirect(w, r, "/campaigns/"+dup.ID)
}

func (c *Controller) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := c.Campaigns.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err, "/campaigns/"+id, "Failed to delete campaign")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Campaign deleted")
	c.redirect(w, r, "/campaigns")
}
