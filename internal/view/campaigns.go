package view

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

var campaignStatuses = []Option{
	{"", "All statuses"},
	{model.CampaignDraft, "Draft"},
	{model.CampaignScheduled, "Scheduled"},
	{model.CampaignSending, "Sending"},
	{model.CampaignSent, "Sent"},
	{model.CampaignPaused, "Paused"},
	{model.CampaignCancelled, "Cancelled"},
}

func CampaignsPage(p PageProps, campaigns []model.Campaign, status, search string) g.Node {
	p.Title, p.Active = "Campaigns", "campaigns"
	return Page(p,
		heading("Campaigns", linkButton("/campaigns/new", "New campaign")),
		h.Form(h.Method("get"), h.Action("/campaigns"), h.Class("mb-4 flex gap-2"),
			h.Input(h.Type("search"), h.Name("search"), h.Value(search), h.Placeholder("Search campaigns"), h.Class(inputClass)),
			h.Select(h.Name("status"), h.Class("rounded border border-gray-300 px-3"),
				g.Map(campaignStatuses, func(o Option) g.Node {
					return h.Option(h.Value(o.Value), g.If(o.Value == status, h.Selected()), g.Text(o.Label))
				}),
			),
			h.Button(h.Type("submit"), h.Class("rounded border px-4"), g.Text("Filter")),
		),
		g.If(len(campaigns) == 0, empty("No campaigns found.")),
		g.If(len(campaigns) > 0, campaignTable(campaigns)),
	)
}

func campaignTable(campaigns []model.Campaign) g.Node {
	return table([]string{"Name", "Status", "Progress", "Opened", "Created"},
		g.Map(campaigns, func(c model.Campaign) g.Node {
			sent, total := c.Stats.Progress()
			return h.Tr(
				cell(h.A(h.Href("/campaigns/"+c.ID), h.Class("font-medium text-indigo-700"), g.Text(c.Name))),
				cell(badge(c.Status)),
				cell(g.Textf("%d / %d", sent, total)),
				cell(g.Text(service.Rate(c.Stats.Opened, c.Stats.Delivered)+"%")),
				cell(g.Text(formatDate(c.CreatedAt))),
			)
		}),
	)
}

// Timezones offered when scheduling a campaign.
var Timezones = []Option{
	{"UTC", "UTC"},
	{"Africa/Nairobi", "Nairobi (EAT)"},
	{"Europe/London", "London"},
	{"Europe/Berlin", "Berlin"},
	{"America/New_York", "New York"},
	{"America/Chicago", "Chicago"},
	{"America/Los_Angeles", "Los Angeles"},
	{"Asia/Dubai", "Dubai"},
	{"Asia/Kolkata", "Kolkata"},
	{"Asia/Tokyo", "Tokyo"},
	{"Australia/Sydney", "Sydney"},
}

func NewCampaignPage(p PageProps, f form.Campaign, templates []model.Template, lists []model.CsvFile, errs FieldErrors) g.Node {
	p.Title, p.Active = "New campaign", "campaigns"

	templateOpts := []Option{{"", "Select later"}}
	for _, t := range templates {
		templateOpts = append(templateOpts, Option{t.ID, t.Name})
	}
	listOpts := []Option{{"", "Select later"}}
	for _, l := range lists {
		if l.Status == model.CsvReady {
			listOpts = append(listOpts, Option{l.ID, l.Name + " (" + itoa(l.RowCount) + " contacts)"})
		}
	}
	if f.Timezone == "" {
		f.Timezone = "UTC"
	}

	return Page(p,
		heading("New campaign"),
		h.Form(h.Method("post"), h.Action("/campaigns"), h.Class("max-w-2xl rounded-lg bg-white p-6 shadow-sm border"),
			textInput("Campaign name", "name", "text", f.Name, errs),
			textArea("Description", "description", f.Description, "2", errs),
			selectInput("Template", "template_id", f.TemplateID, templateOpts, errs),
			selectInput("Contact list", "csv_file_id", f.CsvFileID, listOpts, errs),
			h.Div(h.Class("grid grid-cols-2 gap-4"),
				textInput("Sender name", "from_name", "text", f.FromName, errs),
				textInput("Sender email", "from_email", "email", f.FromEmail, errs),
			),
			textInput("Reply-to", "reply_to", "email", f.ReplyTo, errs),
			checkbox("Send immediately when started", "send_immediately", f.SendImmediately),
			h.Div(h.Class("grid grid-cols-3 gap-4"),
				textInput("Date", "scheduled_date", "date", f.ScheduledDate, errs),
				textInput("Time", "scheduled_time", "time", f.ScheduledTime, errs),
				selectInput("Timezone", "timezone", f.Timezone, Timezones, errs),
			),
			submit("Create campaign"),
		),
	)
}

func CampaignPage(p PageProps, d *service.CampaignDetails, poll time.Duration) g.Node {
	c := d.Campaign
	p.Title, p.Active = c.Name, "campaigns"

	return Page(p,
		heading(c.Name, campaignActions(c)...),
		g.If(c.Description != nil, h.P(h.Class("mb-4 text-gray-600"), g.Text(deref(c.Description)))),
		CampaignProgress(c, poll),
		h.Div(h.Class("grid gap-4 md:grid-cols-3 mb-8 text-sm"),
			detailItem("Sender", c.FromName+" <"+c.FromEmail+">"),
			detailItem("Template", templateName(c)),
			detailItem("Contact list", listName(c)),
			detailItem("Scheduled", formatTime(c.ScheduledAt)),
			detailItem("Started", formatTime(c.StartedAt)),
			detailItem("Completed", formatTime(c.CompletedAt)),
		),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Recipients")),
		recipients(d),
	)
}

// CampaignProgress is the live stats block. While the campaign is sending it
// asks htmx to replace itself every poll interval; the first non-sending
// render drops the trigger and polling stops.
func CampaignProgress(c *model.Campaign, poll time.Duration) g.Node {
	s := c.Stats
	sent, total := s.Progress()
	pct := 0
	if total > 0 {
		pct = sent * 100 / total
	}
	return h.Div(h.ID("campaign-progress"), h.Class("mb-8"),
		g.If(c.IsSending(), g.Group{
			hx.Get("/campaigns/" + c.ID + "/progress"),
			hx.Trigger("every " + htmxInterval(poll)),
			hx.Swap("outerHTML"),
		}),
		h.Div(h.Class("mb-2 flex items-center gap-3"),
			badge(c.Status),
			h.Span(h.Class("text-sm text-gray-600"), g.Textf("%d / %d sent", sent, total)),
		),
		h.Div(h.Class("h-2 w-full rounded bg-gray-200 mb-4"),
			h.Div(h.Class("h-2 rounded bg-indigo-600"), h.Style("width: "+itoa(pct)+"%")),
		),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4"),
			statCard("Delivered", itoa(s.Delivered), rateNote(s.Delivered, s.Sent)),
			statCard("Opened", itoa(s.Opened), rateNote(s.Opened, s.Delivered)),
			statCard("Clicked", itoa(s.Clicked), rateNote(s.Clicked, s.Opened)),
			statCard("Bounced", itoa(s.Bounced+s.Failed), rateNote(s.Bounced+s.Failed, s.Sent)),
		),
	)
}

func rateNote(n, d int) g.Node {
	return h.P(h.Class("text-xs text-gray-500"), g.Text(service.Rate(n, d)+"%"))
}

func campaignActions(c *model.Campaign) []g.Node {
	base := "/campaigns/" + c.ID
	var nodes []g.Node
	for _, a := range service.Actions(c.Status) {
		style := ""
		switch a {
		case "start":
			style = "primary"
		case "cancel":
			style = "danger"
		}
		nodes = append(nodes, postButton(base+"/"+a, actionLabel[a], style))
	}
	nodes = append(nodes, postButton(base+"/duplicate", "Duplicate", ""))
	if !c.IsSending() {
		nodes = append(nodes, postButton(base+"/delete", "Delete", "danger"))
	}
	return nodes
}

var actionLabel = map[string]string{
	"start":  "Start",
	"pause":  "Pause",
	"cancel": "Cancel",
}

func detailItem(label, value string) g.Node {
	return h.Div(
		h.P(h.Class("text-gray-500"), g.Text(label)),
		h.P(h.Class("font-medium"), g.Text(value)),
	)
}

func templateName(c *model.Campaign) string {
	if c.Template != nil {
		return c.Template.Name
	}
	if c.TemplateID == nil {
		return "Not selected"
	}
	return *c.TemplateID
}

func listName(c *model.Campaign) string {
	if c.CsvFile != nil {
		return c.CsvFile.Name
	}
	if c.CsvFileID == nil {
		return "Not selected"
	}
	return *c.CsvFileID
}

func recipients(d *service.CampaignDetails) g.Node {
	if d.EmailsErr != nil {
		return empty("Recipients could not be loaded.")
	}
	if len(d.Emails) == 0 {
		return empty("No recipients yet.")
	}
	return table([]string{"Email", "Name", "Status", "Sent", "Opened"},
		g.Map(d.Emails, func(e model.CampaignEmail) g.Node {
			return h.Tr(
				cell(g.Text(e.EmailAddress)),
				cell(g.Text(deref(e.RecipientName))),
				cell(badge(e.Status)),
				cell(g.Text(formatTime(e.SentAt))),
				cell(g.Text(formatTime(e.OpenedAt))),
			)
		}),
	)
}

// htmxInterval formats d the way hx-trigger parses it: whole seconds or
// milliseconds. Non-positive durations fall back to the default.
func htmxInterval(d time.Duration) string {
	if d <= 0 {
		d = service.DefaultPollInterval
	}
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", d/time.Second)
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
