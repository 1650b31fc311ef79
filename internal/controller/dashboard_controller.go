package controller

import (
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func (c *Controller) Dashboard(w http.ResponseWriter, r *http.Request) {
	o, err := c.Reports.Overview(r.Context())
	if err != nil {
		c.failPage(w, r, err, "Failed to load dashboard")
		return
	}
	c.render(w, http.StatusOK, view.DashboardPage(c.props(w, r), o))
}

func (c *Controller) ReportsPage(w http.ResponseWriter, r *http.Request) {
	rep, err := c.Reports.ReportsPage(r.Context())
	if err != nil {
		c.failPage(w, r, err, "Failed to load reports")
		return
	}
	c.render(w, http.StatusOK, view.ReportsPage(c.props(w, r), rep))
}

func (c *Controller) CampaignReport(w http.ResponseWriter, r *http.Request) {
	rep, err := c.Reports.Campaign(r.Context(), idParam(r))
	if err != nil {
		c.failPage(w, r, err, "Failed to load campaign report")
		return
	}
	c.render(w, http.StatusOK, view.CampaignReportPage(c.props(w, r), rep))
}
