package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

const recentCampaigns = 5

func DashboardPage(p PageProps, o *service.Overview) g.Node {
	p.Title, p.Active = "Dashboard", "dashboard"
	s := o.Stats
	recent := o.Campaigns
	if len(recent) > recentCampaigns {
		recent = recent[:recentCampaigns]
	}

	return Page(p,
		heading("Dashboard", linkButton("/campaigns/new", "New campaign")),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4 mb-8"),
			statCard("Campaigns", itoa(s.Campaigns.Total), weekly(s.WeeklyChanges, func(w *model.WeeklyChanges) int { return w.Campaigns })),
			statCard("Templates", itoa(s.Templates), weekly(s.WeeklyChanges, func(w *model.WeeklyChanges) int { return w.Templates })),
			statCard("Contact lists", itoa(s.CsvFiles), weekly(s.WeeklyChanges, func(w *model.WeeklyChanges) int { return w.CsvFiles })),
			statCard("Contacts", itoa(s.Contacts), weekly(s.WeeklyChanges, func(w *model.WeeklyChanges) int { return w.Contacts })),
		),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4 mb-8"),
			statCard("Emails sent", itoa(s.Emails.Sent)),
			statCard("Delivery rate", service.Rate(s.Emails.Delivered, s.Emails.Sent)+"%"),
			statCard("Open rate", service.Rate(s.Emails.Opened, s.Emails.Delivered)+"%"),
			statCard("Click rate", service.Rate(s.Emails.Clicked, s.Emails.Opened)+"%"),
		),
		h.Div(h.Class("grid gap-6 md:grid-cols-2"),
			h.Section(
				h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Recent campaigns")),
				g.If(len(recent) == 0, empty("No campaigns yet.")),
				g.If(len(recent) > 0, campaignTable(recent)),
			),
			h.Section(
				h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Last 7 days")),
				performanceTable(o.Performance),
				h.H2(h.Class("text-lg font-semibold my-3"), g.Text("Activity")),
				activityList(o.Activity),
			),
		),
	)
}

func weekly(w *model.WeeklyChanges, pick func(*model.WeeklyChanges) int) g.Node {
	if w == nil {
		return nil
	}
	return h.P(h.Class("text-xs text-gray-500"), g.Textf("+%d this week", pick(w)))
}

func performanceTable(points []model.EmailPerformancePoint) g.Node {
	if len(points) == 0 {
		return empty("No emails sent this week.")
	}
	return table([]string{"Day", "Sent", "Opened", "Clicked"},
		g.Map(points, func(pt model.EmailPerformancePoint) g.Node {
			return h.Tr(cell(g.Text(pt.Name)), cell(g.Text(itoa(pt.Sent))), cell(g.Text(itoa(pt.Opened))), cell(g.Text(itoa(pt.Clicked))))
		}),
	)
}

func activityList(items []model.ActivityItem) g.Node {
	if len(items) == 0 {
		return empty("No recent activity.")
	}
	return h.Ul(h.Class("divide-y rounded-lg border bg-white"),
		g.Map(items, func(a model.ActivityItem) g.Node {
			return h.Li(h.Class("px-4 py-2 text-sm flex justify-between"),
				h.Span(g.Text(a.Description)),
				h.Span(h.Class("text-gray-500"), g.Text(formatTime(&a.OccurredAt))),
			)
		}),
	)
}
