// Package view renders the dashboard pages with gomponents.
package view

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const appName = "Campaign Dashboard"

// Flashes are the one-shot notifications shown at the top of a page.
type Flashes struct {
	Success []string
	Error   []string
}

// PageProps is what every full page needs besides its content.
type PageProps struct {
	Title   string
	User    string
	Active  string
	Flashes Flashes
}

// Title appends the application name to a page title.
func Title(title string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

type navItem struct {
	key, label, href string
}

var navItems = []navItem{
	{"dashboard", "Dashboard", "/"},
	{"campaigns", "Campaigns", "/campaigns"},
	{"templates", "Templates", "/templates"},
	{"csv", "Contact Lists", "/csv-files"},
	{"ads", "Advertisements", "/ads"},
	{"reports", "Reports", "/reports"},
	{"images", "Images", "/images"},
}

// Page wraps body in the document shell. Signed-out pages get no navigation.
func Page(p PageProps, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(Title(p.Title))),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
			),
			h.Body(h.Class("bg-gray-50 text-gray-900"),
				g.If(p.User != "", navbar(p)),
				h.Main(h.Class("max-w-6xl mx-auto p-6"),
					flashList(p.Flashes),
					g.Group(body),
				),
			),
		),
	)
}

func navbar(p PageProps) g.Node {
	return h.Nav(h.Class("bg-white border-b"),
		h.Div(h.Class("max-w-6xl mx-auto px-6 py-3 flex items-center gap-6"),
			h.A(h.Href("/"), h.Class("font-bold text-indigo-700"), g.Text(appName)),
			g.Map(navItems, func(n navItem) g.Node {
				cls := "text-sm text-gray-600 hover:text-gray-900"
				if n.key == p.Active {
					cls = "text-sm font-semibold text-indigo-700"
				}
				return h.A(h.Href(n.href), h.Class(cls), g.Text(n.label))
			}),
			h.Div(h.Class("ml-auto flex items-center gap-3 text-sm"),
				h.Span(g.Text(p.User)),
				h.Form(h.Method("post"), h.Action("/logout"),
					h.Button(h.Type("submit"), h.Class("text-gray-500 hover:text-red-600"), g.Text("Sign out")),
				),
			),
		),
	)
}

func flashList(f Flashes) g.Node {
	return g.Group{
		g.Map(f.Success, func(m string) g.Node {
			return h.Div(h.Class("mb-4 rounded bg-green-50 border border-green-200 p-3 text-green-800"), h.Role("status"), g.Text(m))
		}),
		g.Map(f.Error, func(m string) g.Node {
			return h.Div(h.Class("mb-4 rounded bg-red-50 border border-red-200 p-3 text-red-800"), h.Role("alert"), g.Text(m))
		}),
	}
}

// ErrorPage is shown when a page's data could not be loaded.
func ErrorPage(p PageProps, message string) g.Node {
	return Page(p,
		h.H1(h.Class("text-2xl font-bold mb-4"), g.Text("Something went wrong")),
		h.P(h.Class("text-gray-700"), g.Text(message)),
	)
}

func heading(title string, actions ...g.Node) g.Node {
	return h.Div(h.Class("flex items-center justify-between mb-6"),
		h.H1(h.Class("text-2xl font-bold"), g.Text(title)),
		h.Div(h.Class("flex gap-2"), g.Group(actions)),
	)
}

func linkButton(href, label string) g.Node {
	return h.A(h.Href(href), h.Class("rounded bg-indigo-600 px-4 py-2 text-sm text-white hover:bg-indigo-700"), g.Text(label))
}

// postButton is a single-button form for state-changing actions.
func postButton(action, label, style string) g.Node {
	cls := "rounded px-3 py-1.5 text-sm border "
	switch style {
	case "danger":
		cls += "border-red-300 text-red-700 hover:bg-red-50"
	case "primary":
		cls += "border-indigo-600 bg-indigo-600 text-white hover:bg-indigo-700"
	default:
		cls += "border-gray-300 text-gray-700 hover:bg-gray-100"
	}
	return h.Form(h.Method("post"), h.Action(action), h.Class("inline"),
		h.Button(h.Type("submit"), h.Class(cls), g.Text(label)),
	)
}

func statCard(label, value string, extra ...g.Node) g.Node {
	return h.Div(h.Class("rounded-lg bg-white p-4 shadow-sm border"),
		h.P(h.Class("text-sm text-gray-500"), g.Text(label)),
		h.P(h.Class("text-2xl font-semibold"), g.Text(value)),
		g.Group(extra),
	)
}

func table(headers []string, rows ...g.Node) g.Node {
	return h.Div(h.Class("overflow-x-auto rounded-lg border bg-white"),
		h.Table(h.Class("min-w-full text-sm"),
			h.THead(h.Class("bg-gray-50 text-left text-gray-600"),
				h.Tr(g.Map(headers, func(s string) g.Node { return h.Th(h.Class("px-4 py-2"), g.Text(s)) })),
			),
			h.TBody(h.Class("divide-y"), g.Group(rows)),
		),
	)
}

func cell(nodes ...g.Node) g.Node {
	return h.Td(h.Class("px-4 py-2"), g.Group(nodes))
}

func empty(message string) g.Node {
	return h.P(h.Class("rounded-lg border border-dashed p-8 text-center text-gray-500"), g.Text(message))
}

var badgeColors = map[string]string{
	"draft":      "bg-gray-100 text-gray-700",
	"scheduled":  "bg-blue-100 text-blue-700",
	"sending":    "bg-yellow-100 text-yellow-800",
	"sent":       "bg-green-100 text-green-700",
	"paused":     "bg-orange-100 text-orange-700",
	"cancelled":  "bg-red-100 text-red-700",
	"ready":      "bg-green-100 text-green-700",
	"processing": "bg-yellow-100 text-yellow-800",
	"error":      "bg-red-100 text-red-700",
	"delivered":  "bg-green-100 text-green-700",
	"opened":     "bg-indigo-100 text-indigo-700",
	"clicked":    "bg-purple-100 text-purple-700",
	"bounced":    "bg-red-100 text-red-700",
	"failed":     "bg-red-100 text-red-700",
}

func badge(status string) g.Node {
	color, ok := badgeColors[status]
	if !ok {
		color = "bg-gray-100 text-gray-700"
	}
	return h.Span(h.Class("rounded-full px-2 py-0.5 text-xs font-medium "+color), g.Text(status))
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006")
}

func itoa(n int) string { return fmt.Sprint(n) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
