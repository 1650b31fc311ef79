package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FieldErrors maps form field names to their validation message.
type FieldErrors map[string]string

// Option is one choice of a select field.
type Option struct {
	Value, Label string
}

func field(label, name string, errs FieldErrors, control g.Node) g.Node {
	return h.Div(h.Class("mb-4"),
		h.Label(h.For(name), h.Class("block text-sm font-medium mb-1"), g.Text(label)),
		control,
		g.If(errs[name] != "", h.P(h.Class("mt-1 text-sm text-red-600"), g.Text(errs[name]))),
	)
}

const inputClass = "w-full rounded border border-gray-300 px-3 py-2"

func textInput(label, name, typ, value string, errs FieldErrors, attrs ...g.Node) g.Node {
	return field(label, name, errs,
		h.Input(h.Type(typ), h.ID(name), h.Name(name), h.Value(value), h.Class(inputClass), g.Group(attrs)),
	)
}

func textArea(label, name, value string, rows string, errs FieldErrors, attrs ...g.Node) g.Node {
	return field(label, name, errs,
		h.Textarea(h.ID(name), h.Name(name), h.Rows(rows), h.Class(inputClass+" font-mono text-sm"), g.Group(attrs), g.Text(value)),
	)
}

func selectInput(label, name, value string, opts []Option, errs FieldErrors, attrs ...g.Node) g.Node {
	return field(label, name, errs,
		h.Select(h.ID(name), h.Name(name), h.Class(inputClass), g.Group(attrs),
			g.Map(opts, func(o Option) g.Node {
				return h.Option(h.Value(o.Value), g.If(o.Value == value, h.Selected()), g.Text(o.Label))
			}),
		),
	)
}

func checkbox(label, name string, checked bool) g.Node {
	return h.Div(h.Class("mb-4 flex items-center gap-2"),
		h.Input(h.Type("checkbox"), h.ID(name), h.Name(name), h.Value("true"), g.If(checked, h.Checked())),
		h.Label(h.For(name), h.Class("text-sm"), g.Text(label)),
	)
}

func submit(label string) g.Node {
	return h.Button(h.Type("submit"), h.Class("rounded bg-indigo-600 px-4 py-2 text-white hover:bg-indigo-700"), g.Text(label))
}
