package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func ReportsPage(p PageProps, r *service.Reports) g.Node {
	p.Title, p.Active = "Reports", "reports"
	e := r.Stats.Emails
	return Page(p,
		heading("Reports"),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4 mb-8"),
			statCard("Emails sent", itoa(e.Sent)),
			statCard("Delivered", itoa(e.Delivered), rateNote(e.Delivered, e.Sent)),
			statCard("Opened", itoa(e.Opened), rateNote(e.Opened, e.Delivered)),
			statCard("Clicked", itoa(e.Clicked), rateNote(e.Clicked, e.Opened)),
			statCard("Bounced", itoa(e.Bounced), rateNote(e.Bounced, e.Sent)),
			statCard("Failed", itoa(e.Failed)),
			statCard("Unsubscribed", itoa(e.Unsubscribed), rateNote(e.Unsubscribed, e.Delivered)),
			statCard("Pending", itoa(e.Pending)),
		),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Sent campaigns")),
		g.If(len(r.Campaigns) == 0, empty("No campaigns have finished sending.")),
		g.If(len(r.Campaigns) > 0, table([]string{"Campaign", "Sent", "Delivery", "Open", "Click", "Bounce", "Completed"},
			g.Map(r.Campaigns, func(c model.Campaign) g.Node {
				s := c.Stats
				return h.Tr(
					cell(h.A(h.Href("/reports/campaigns/"+c.ID), h.Class("font-medium text-indigo-700"), g.Text(c.Name))),
					cell(g.Text(itoa(s.Sent))),
					cell(g.Text(service.Rate(s.Delivered, s.Sent)+"%")),
					cell(g.Text(service.Rate(s.Opened, s.Delivered)+"%")),
					cell(g.Text(service.Rate(s.Clicked, s.Opened)+"%")),
					cell(g.Text(service.Rate(s.Bounced, s.Sent)+"%")),
					cell(g.Text(formatTime(c.CompletedAt))),
				)
			}),
		)),
	)
}

func CampaignReportPage(p PageProps, r *model.CampaignReport) g.Node {
	c := r.Campaign
	s := r.Stats
	p.Title, p.Active = c.Name+" report", "reports"
	return Page(p,
		heading(c.Name, linkButton("/campaigns/"+c.ID, "Open campaign")),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4 mb-8"),
			statCard("Recipients", itoa(s.Total)),
			statCard("Delivered", itoa(s.Delivered), rateNote(s.Delivered, s.Sent)),
			statCard("Opened", itoa(s.Opened), rateNote(s.Opened, s.Delivered)),
			statCard("Clicked", itoa(s.Clicked), rateNote(s.Clicked, s.Opened)),
		),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Recent events")),
		g.If(len(r.RecentEvents) == 0, empty("No events recorded.")),
		g.If(len(r.RecentEvents) > 0, table([]string{"Event", "When"},
			g.Map(r.RecentEvents, func(e model.EmailEvent) g.Node {
				return h.Tr(cell(badge(e.EventType)), cell(g.Text(formatTime(&e.OccurredAt))))
			}),
		)),
	)
}
