package view

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func CsvFilesPage(p PageProps, files []model.CsvFile) g.Node {
	p.Title, p.Active = "Contact lists", "csv"
	return Page(p,
		heading("Contact lists"),
		h.Form(h.Method("post"), h.Action("/csv-files"), h.EncType("multipart/form-data"),
			h.Class("mb-6 flex flex-wrap items-end gap-3 rounded-lg bg-white p-4 shadow-sm border"),
			h.Div(
				h.Label(h.For("file"), h.Class("block text-sm font-medium mb-1"), g.Text("CSV file")),
				h.Input(h.Type("file"), h.ID("file"), h.Name("file"), h.Accept(".csv,text/csv"), h.Required()),
			),
			h.Div(
				h.Label(h.For("name"), h.Class("block text-sm font-medium mb-1"), g.Text("List name")),
				h.Input(h.Type("text"), h.ID("name"), h.Name("name"), h.Placeholder("Defaults to the file name"), h.Class(inputClass)),
			),
			submit("Upload"),
		),
		g.If(len(files) == 0, empty("No contact lists uploaded yet.")),
		g.If(len(files) > 0, table([]string{"Name", "Status", "Contacts", "Type", "Uploaded", ""},
			g.Map(files, func(f model.CsvFile) g.Node {
				kind := "Original"
				if f.IsFiltered {
					kind = "Filtered"
				}
				return h.Tr(
					cell(h.A(h.Href("/csv-files/"+f.ID), h.Class("font-medium text-indigo-700"), g.Text(f.Name))),
					cell(badge(f.Status)),
					cell(g.Text(itoa(f.RowCount))),
					cell(g.Text(kind)),
					cell(g.Text(formatDate(f.CreatedAt))),
					cell(postButton("/csv-files/"+f.ID+"/delete", "Delete", "danger")),
				)
			}),
		)),
	)
}

func CsvFilePage(p PageProps, d *service.CsvFileDetails) g.Node {
	f := d.File
	p.Title, p.Active = f.Name, "csv"
	return Page(p,
		heading(f.Name, postButton("/csv-files/"+f.ID+"/delete", "Delete", "danger")),
		h.Div(h.Class("mb-6 flex gap-4 text-sm"),
			badge(f.Status),
			h.Span(g.Textf("%d contacts", f.RowCount)),
			h.Span(h.Class("text-gray-500"), g.Text(f.OriginalFilename)),
		),
		g.If(f.ErrorMessage != nil, h.P(h.Class("mb-4 text-red-700"), g.Text(deref(f.ErrorMessage)))),
		g.If(f.FilterCriteria != nil, criteria(f.FilterCriteria)),
		g.If(d.Options != nil, filterForm(f.ID, d.Options)),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Contacts")),
		contactsTable(d.Contacts),
		pager("/csv-files/"+f.ID, d.Contacts.Pagination),
	)
}

func criteria(c *model.FilterCriteria) g.Node {
	line := func(label string, vals []string) g.Node {
		return g.If(len(vals) > 0, h.Li(g.Text(label+": "+strings.Join(vals, ", "))))
	}
	return h.Ul(h.Class("mb-6 text-sm text-gray-600"),
		line("Countries", c.Countries),
		line("Timezones", c.Timezones),
		line("Email domains", c.EmailDomains),
	)
}

func filterForm(id string, o *model.FilterOptions) g.Node {
	multi := func(label, name string, values []string) g.Node {
		return h.Div(
			h.Label(h.For(name), h.Class("block text-sm font-medium mb-1"), g.Text(label)),
			h.Select(h.ID(name), h.Name(name), h.Multiple(), h.Class(inputClass+" h-32"),
				g.Map(values, func(v string) g.Node { return h.Option(h.Value(v), g.Text(v)) }),
			),
		)
	}
	return h.Form(h.Method("post"), h.Action("/csv-files/"+id+"/filter"),
		h.Class("mb-8 rounded-lg bg-white p-4 shadow-sm border"),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Create filtered list")),
		h.Div(h.Class("grid gap-4 md:grid-cols-3 mb-4"),
			multi("Countries", "countries", o.Countries),
			multi("Timezones", "timezones", o.Timezones),
			multi("Email domains", "email_domains", o.EmailDomains),
		),
		textInput("Name", "name", "text", "", nil),
		submit("Create filtered list"),
	)
}

func contactsTable(page *model.Page[model.CsvContact]) g.Node {
	if len(page.Data) == 0 {
		return empty("No contacts.")
	}
	return table([]string{"Email", "Name", "Country", "Company", "Valid"},
		g.Map(page.Data, func(c model.CsvContact) g.Node {
			valid := g.Text("yes")
			if !c.IsValid {
				valid = h.Span(h.Class("text-red-700"), h.Title(deref(c.ValidationError)), g.Text("no"))
			}
			return h.Tr(
				cell(g.Text(c.Email)),
				cell(g.Text(c.FullName())),
				cell(g.Text(deref(c.Country))),
				cell(g.Text(deref(c.Company))),
				cell(valid),
			)
		}),
	)
}

func pager(base string, pg model.Pagination) g.Node {
	if pg.TotalPages <= 1 {
		return nil
	}
	link := func(page int, label string, enabled bool) g.Node {
		if !enabled {
			return h.Span(h.Class("px-3 py-1 text-gray-400"), g.Text(label))
		}
		return h.A(h.Href(base+"?page="+itoa(page)), h.Class("px-3 py-1 text-indigo-700"), g.Text(label))
	}
	return h.Div(h.Class("mt-4 flex items-center gap-2 text-sm"),
		link(pg.Page-1, "Previous", pg.Page > 1),
		h.Span(g.Textf("Page %d of %d", pg.Page, pg.TotalPages)),
		link(pg.Page+1, "Next", pg.Page < pg.TotalPages),
	)
}
