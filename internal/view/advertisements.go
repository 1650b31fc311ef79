package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// AdRow pairs an advertisement with its public tracking link.
type AdRow struct {
	Ad   model.Advertisement
	Link string
}

func AdsPage(p PageProps, rows []AdRow, stats *model.AdDashboardStats) g.Node {
	p.Title, p.Active = "Advertisements", "ads"
	return Page(p,
		heading("Advertisements", linkButton("/ads/new", "New advertisement")),
		g.If(stats != nil, adStats(stats)),
		g.If(len(rows) == 0, empty("No advertisements yet.")),
		g.If(len(rows) > 0, table([]string{"Name", "Platform", "Clicks", "Unique", "Tracking link", "Active", ""},
			g.Map(rows, func(r AdRow) g.Node {
				a := r.Ad
				return h.Tr(
					cell(h.A(h.Href("/ads/"+a.ID), h.Class("font-medium text-indigo-700"), g.Text(a.Name))),
					cell(g.Text(deref(a.Platform))),
					cell(g.Text(itoa(a.Stats.Clicks))),
					cell(g.Text(itoa(a.Stats.UniqueClicks))),
					cell(h.Code(h.Class("text-xs"), g.Text(r.Link))),
					cell(g.Text(yesNo(a.IsActive))),
					cell(
						postButton("/ads/"+a.ID+"/toggle", toggleLabel(a.IsActive), ""),
						postButton("/ads/"+a.ID+"/delete", "Delete", "danger"),
					),
				)
			}),
		)),
	)
}

func topAd(ads []model.TopAd) string {
	if len(ads) == 0 {
		return "-"
	}
	return ads[0].Name
}

func adStats(s *model.AdDashboardStats) g.Node {
	return h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4 mb-8"),
		statCard("Advertisements", itoa(s.TotalAds)),
		statCard("Active", itoa(s.ActiveAds)),
		statCard("Total clicks", itoa(s.TotalClicks)),
		statCard("Top advertisement", topAd(s.TopAds)),
	)
}

var platforms = []Option{
	{"", "None"},
	{"Facebook", "Facebook"},
	{"Instagram", "Instagram"},
	{"Google Ads", "Google Ads"},
	{"LinkedIn", "LinkedIn"},
	{"Twitter", "Twitter"},
	{"TikTok", "TikTok"},
	{"Email", "Email"},
	{"Other", "Other"},
}

func NewAdPage(p PageProps, f form.Advertisement, errs FieldErrors) g.Node {
	p.Title, p.Active = "New advertisement", "ads"
	return Page(p,
		heading("New advertisement"),
		h.Form(h.Method("post"), h.Action("/ads"), h.Class("max-w-2xl rounded-lg bg-white p-6 shadow-sm border"),
			textInput("Name", "name", "text", f.Name, errs),
			textArea("Description", "description", f.Description, "2", errs),
			textInput("Destination URL", "destination_url", "url", f.DestinationURL, errs),
			selectInput("Platform", "platform", f.Platform, platforms, errs),
			h.P(h.Class("mb-2 text-sm text-gray-500"), g.Text("Blank UTM fields are filled from the name and platform.")),
			h.Div(h.Class("grid grid-cols-3 gap-4"),
				textInput("utm_source", "utm_source", "text", f.UTMSource, errs),
				textInput("utm_medium", "utm_medium", "text", f.UTMMedium, errs),
				textInput("utm_campaign", "utm_campaign", "text", f.UTMCampaign, errs),
			),
			submit("Create advertisement"),
		),
	)
}

func AdPage(p PageProps, s *model.AdDetailedStats, link string) g.Node {
	a := s.Advertisement
	p.Title, p.Active = a.Name, "ads"
	return Page(p,
		heading(a.Name, postButton("/ads/"+a.ID+"/toggle", toggleLabel(a.IsActive), "")),
		h.P(h.Class("mb-2 text-sm"), g.Text("Destination: "), h.A(h.Href(a.DestinationURL), h.Class("text-indigo-700"), g.Text(a.DestinationURL))),
		h.P(h.Class("mb-6 text-sm"), g.Text("Tracking link: "), h.Code(g.Text(link))),
		h.Form(h.Method("get"), h.Action("/ads/"+a.ID), h.Class("mb-6 flex gap-2 text-sm"),
			h.Select(h.Name("days"), h.Class("rounded border px-2 py-1"),
				g.Map([]int{7, 30, 90}, func(d int) g.Node {
					return h.Option(h.Value(itoa(d)), g.If(d == s.PeriodDays, h.Selected()), g.Textf("Last %d days", d))
				}),
			),
			h.Button(h.Type("submit"), h.Class("rounded border px-3"), g.Text("Show")),
		),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-3 mb-8"),
			statCard("Clicks", itoa(s.TotalClicks)),
			statCard("Unique clicks", itoa(a.Stats.UniqueClicks)),
			statCard("Period", itoa(s.PeriodDays)+" days"),
		),
		h.Div(h.Class("grid gap-6 md:grid-cols-3 mb-8"),
			breakdown("Devices", s.DeviceBreakdown),
			breakdown("Browsers", s.BrowserBreakdown),
			breakdown("Operating systems", s.OSBreakdown),
		),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Daily clicks")),
		g.If(len(s.DailyStats) == 0, empty("No clicks in this period.")),
		g.If(len(s.DailyStats) > 0, table([]string{"Date", "Clicks"},
			g.Map(s.DailyStats, func(d model.AdDailyStats) g.Node {
				return h.Tr(cell(g.Text(d.Date)), cell(g.Text(itoa(d.Count))))
			}),
		)),
	)
}

func breakdown(title string, items []model.AdBreakdown) g.Node {
	return h.Section(
		h.H3(h.Class("font-semibold mb-2"), g.Text(title)),
		g.If(len(items) == 0, h.P(h.Class("text-sm text-gray-500"), g.Text("No data"))),
		h.Ul(h.Class("text-sm"),
			g.Map(items, func(b model.AdBreakdown) g.Node {
				return h.Li(h.Class("flex justify-between"), h.Span(g.Text(b.Name)), h.Span(g.Text(itoa(b.Count))))
			}),
		),
	)
}

func toggleLabel(active bool) string {
	if active {
		return "Deactivate"
	}
	return "Activate"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
