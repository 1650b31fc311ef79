package view

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

func TemplatesPage(p PageProps, templates []model.Template, search string) g.Node {
	p.Title, p.Active = "Templates", "templates"
	return Page(p,
		heading("Templates", linkButton("/templates/new", "New template")),
		h.Form(h.Method("get"), h.Action("/templates"), h.Class("mb-4"),
			h.Input(h.Type("search"), h.Name("search"), h.Value(search), h.Placeholder("Search templates"), h.Class(inputClass)),
		),
		g.If(len(templates) == 0, empty("No templates found.")),
		g.If(len(templates) > 0, table([]string{"Name", "Subject", "Variables", "Updated", ""},
			g.Map(templates, func(t model.Template) g.Node {
				return h.Tr(
					cell(h.A(h.Href("/templates/"+t.ID), h.Class("font-medium text-indigo-700"), g.Text(t.Name))),
					cell(g.Text(t.Subject)),
					cell(h.Code(h.Class("text-xs"), g.Text(strings.Join(t.Variables, ", ")))),
					cell(g.Text(formatDate(t.UpdatedAt))),
					cell(
						postButton("/templates/"+t.ID+"/duplicate", "Duplicate", ""),
						postButton("/templates/"+t.ID+"/delete", "Delete", "danger"),
					),
				)
			}),
		)),
	)
}

func NewTemplatePage(p PageProps, f form.Template, errs FieldErrors) g.Node {
	p.Title, p.Active = "New template", "templates"
	if f.EditorMode == "" {
		f.EditorMode = "visual"
	}
	return Page(p,
		heading("New template"),
		h.Form(h.Method("post"), h.Action("/templates"), h.Class("max-w-3xl rounded-lg bg-white p-6 shadow-sm border"),
			textInput("Template name", "name", "text", f.Name, errs),
			textInput("Subject", "subject", "text", f.Subject, errs),
			selectInput("Editor", "editor_mode", f.EditorMode, []Option{{"visual", "Visual"}, {"html", "HTML"}}, errs),
			h.P(h.Class("mb-2 text-sm text-gray-500"),
				g.Text("Use placeholders such as {{first_name}}, {{last_name}}, {{email}} or {{company}}."),
			),
			h.FieldSet(h.Class("mb-4 border rounded p-4"),
				h.Legend(h.Class("text-sm font-medium px-1"), g.Text("Visual editor")),
				textArea("Message", "body_text", f.BodyText, "8", errs),
				h.Div(h.Class("grid grid-cols-2 gap-4"),
					textInput("Button text", "cta_text", "text", f.CTAText, errs),
					textInput("Button link", "cta_link", "url", f.CTALink, errs),
				),
			),
			h.FieldSet(h.Class("mb-4 border rounded p-4"),
				h.Legend(h.Class("text-sm font-medium px-1"), g.Text("HTML editor")),
				textArea("HTML", "custom_html", f.CustomHTML, "12", errs),
			),
			submit("Create template"),
		),
	)
}

// TemplatePage shows a template rendered for a sample recipient.
func TemplatePage(p PageProps, t *model.Template, subject, body string) g.Node {
	p.Title, p.Active = t.Name, "templates"
	return Page(p,
		heading(t.Name,
			postButton("/templates/"+t.ID+"/duplicate", "Duplicate", ""),
			postButton("/templates/"+t.ID+"/delete", "Delete", "danger"),
		),
		h.Div(h.Class("mb-4 text-sm"),
			h.Span(h.Class("text-gray-500"), g.Text("Subject: ")),
			h.Span(h.Class("font-medium"), g.Text(subject)),
		),
		g.If(len(t.Variables) > 0, h.P(h.Class("mb-4 text-sm text-gray-500"),
			g.Text("Variables: "), h.Code(g.Text(strings.Join(t.Variables, ", "))),
		)),
		h.IFrame(h.Class("h-[600px] w-full rounded border bg-white"), g.Attr("sandbox", ""), g.Attr("srcdoc", body), h.Title("Preview")),
	)
}
