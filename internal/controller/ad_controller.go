package controller

import (
	"net/http"
	"strconv"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func (c *Controller) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := c.Ads.List(r.Context())
	if err != nil {
		c.failPage(w, r, err, "Failed to load advertisements")
		return
	}
	stats, err := c.Ads.Dashboard(r.Context())
	if err != nil {
		// the table is still useful without the summary
		c.Logger.Warn("Advertisement stats unavailable", "error", err)
	}
	rows := make([]view.AdRow, len(ads))
	for i := range ads {
		rows[i] = view.AdRow{Ad: ads[i], Link: c.Ads.TrackingLink(&ads[i])}
	}
	c.render(w, http.StatusOK, view.AdsPage(c.props(w, r), rows, stats))
}

func (c *Controller) NewAd(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, view.NewAdPage(c.props(w, r), form.Advertisement{}, nil))
}

func (c *Controller) CreateAd(w http.ResponseWriter, r *http.Request) {
	f := form.Advertisement{
		Name:           r.FormValue("name"),
		Description:    r.FormValue("description"),
		DestinationURL: r.FormValue("destination_url"),
		Platform:       r.FormValue("platform"),
		UTMSource:      r.FormValue("utm_source"),
		UTMMedium:      r.FormValue("utm_medium"),
		UTMCampaign:    r.FormValue("utm_campaign"),
	}
	ad, err := c.Ads.Create(r.Context(), f)
	if err != nil {
		if errs, ok := fieldErrors(err); ok {
			c.render(w, http.StatusUnprocessableEntity, view.NewAdPage(c.props(w, r), f, errs))
			return
		}
		c.fail(w, r, err, "/ads/new", "Failed to create advertisement")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Advertisement created")
	c.redirect(w, r, "/ads/"+ad.ID)
}

func (c *Controller) ShowAd(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	stats, err := c.Ads.Stats(r.Context(), idParam(r), days)
	if err != nil {
		c.failPage(w, r, err, "Failed to load advertisement")
		return
	}
	c.render(w, http.StatusOK, view.AdPage(c.props(w, r), stats, c.Ads.TrackingLink(&stats.Advertisement)))
}

func (c *Controller) ToggleAd(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	ad, err := c.Ads.Get(r.Context(), id)
	if err != nil {
		c.fail(w, r, err, "/ads", "Failed to load advertisement")
		return
	}
	updated, err := c.Ads.ToggleActive(r.Context(), ad)
	if err != nil {
		c.fail(w, r, err, "/ads", "Failed to update advertisement")
		return
	}
	if updated.IsActive {
		c.Sessions.FlashSuccess(w, r, "Advertisement activated")
	} else {
		c.Sessions.FlashSuccess(w, r, "Advertisement deactivated")
	}
	c.redirect(w, r, back(r, "/ads"))
}

func (c *Controller) DeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := c.Ads.Delete(r.Context(), idParam(r)); err != nil {
		c.fail(w, r, err, "/ads", "Failed to delete advertisement")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Advertisement deleted")
	c.redirect(w, r, "/ads")
}
