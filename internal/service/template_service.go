// internal/service/template_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// UnknownValue replaces placeholders that have no value in a preview.
const UnknownValue = "<unknown>"

var (
	placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)
	styleRe       = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	scriptRe      = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	spaceRe       = regexp.MustCompile(`\s+`)
)

type TemplateService struct {
	Templates TemplateAPI
	Validator *form.Validator
}

func (s *TemplateService) List(ctx context.Context, search string) ([]model.Template, error) {
	return s.Templates.List(ctx, api.TemplateFilter{Search: search})
}

func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	return s.Templates.Get(ctx, id)
}

// Create builds the body from the form and saves an active template. The
// HTML comes from the visual editor unless the form is in html mode.
func (s *TemplateService) Create(ctx context.Context, f form.Template) (*model.Template, error) {
	if err := s.Validator.Validate(f); err != nil {
		return nil, err
	}

	body, text := s.Body(f)
	if strings.TrimSpace(body) == "" {
		ve := validationFor("custom_html", "HTML content is required")
		return nil, ve
	}

	active := true
	return s.Templates.Create(ctx, model.TemplateInput{
		Name:      ptr(strings.TrimSpace(f.Name)),
		Subject:   ptr(strings.TrimSpace(f.Subject)),
		BodyHTML:  &body,
		BodyText:  &text,
		Variables: ExtractVariables(f.Subject + " " + body),
		IsActive:  &active,
	})
}

// Body returns the HTML and plain text bodies for the form's editor mode.
func (s *TemplateService) Body(f form.Template) (string, string) {
	if f.HTMLMode() {
		return f.CustomHTML, StripHTML(f.CustomHTML)
	}
	if strings.TrimSpace(f.BodyText) == "" {
		return "", ""
	}
	return GenerateEmailHTML(f.Subject, f.BodyText, f.CTAText, f.CTALink), f.BodyText
}

func (s *TemplateService) Duplicate(ctx context.Context, id string) (*model.Template, error) {
	return s.Templates.Duplicate(ctx, id)
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.Templates.Delete(ctx, id)
}

// ExtractVariables returns the distinct {{name}} placeholders in order of
// first appearance.
func ExtractVariables(content string) []string {
	seen := map[string]bool{}
	var vars []string
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	return vars
}

// RenderPreview substitutes {{name}} placeholders from data. Missing or
// empty values render as UnknownValue.
func RenderPreview(content string, data map[string]string) string {
	return substitute(content, data, func(s string) string { return s })
}

// RenderPreviewHTML is RenderPreview for an HTML body: substituted values,
// UnknownValue included, are escaped so they display as text.
func RenderPreviewHTML(content string, data map[string]string) string {
	return substitute(content, data, html.EscapeString)
}

func substitute(content string, data map[string]string, escape func(string) string) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(m string) string {
		key := placeholderRe.FindStringSubmatch(m)[1]
		if v := data[key]; v != "" {
			return escape(v)
		}
		return escape(UnknownValue)
	})
}

// ContactData exposes a contact's fields under their placeholder names.
func ContactData(c model.CsvContact) map[string]string {
	data := map[string]string{
		"email":      c.Email,
		"first_name": value(c.FirstName),
		"last_name":  value(c.LastName),
		"full_name":  c.FullName(),
		"country":    value(c.Country),
		"timezone":   value(c.Timezone),
		"phone":      value(c.Phone),
		"company":    value(c.Company),
	}
	for k, v := range c.CustomFields {
		if _, ok := data[k]; !ok && v != nil {
			data[k] = fmt.Sprint(v)
		}
	}
	return data
}

// StripHTML drops style and script blocks with their contents, then tags,
// and collapses whitespace.
func StripHTML(s string) string {
	s = styleRe.ReplaceAllString(s, " ")
	s = scriptRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

const (
	paragraphStyle = "margin: 0 0 16px 0; line-height: 1.6;"
	buttonStyle    = "display: inline-block; padding: 12px 24px; background-color: #2563eb; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600;"
	footerStyle    = "padding: 24px; font-size: 12px; color: #6b7280; text-align: center;"
)

// GenerateEmailHTML renders the visual editor's output: one paragraph per
// blank-line separated block, an optional call-to-action button when both
// text and link are set, and a footer addressed to {{email}}.
func GenerateEmailHTML(subject, body, ctaText, ctaLink string) string {
	var paragraphs []g.Node
	for _, part := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var lines []g.Node
		for i, line := range strings.Split(part, "\n") {
			if i > 0 {
				lines = append(lines, h.Br())
			}
			lines = append(lines, g.Text(line))
		}
		paragraphs = append(paragraphs, h.P(h.Style(paragraphStyle), g.Group(lines)))
	}

	var cta g.Node
	if strings.TrimSpace(ctaText) != "" && strings.TrimSpace(ctaLink) != "" {
		cta = h.Div(h.Style("margin: 24px 0; text-align: center;"),
			h.A(h.Href(ctaLink), h.Style(buttonStyle), g.Text(ctaText)),
		)
	}

	doc := h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(subject)),
			),
			h.Body(h.Style("margin: 0; padding: 0; background-color: #f3f4f6; font-family: Arial, sans-serif;"),
				h.Table(g.Attr("role", "presentation"), g.Attr("width", "100%"), g.Attr("cellspacing", "0"), g.Attr("cellpadding", "0"),
					h.Tr(h.Td(g.Attr("align", "center"), h.Style("padding: 24px;"),
						h.Table(g.Attr("role", "presentation"), g.Attr("width", "600"), h.Style("background-color: #ffffff; border-radius: 8px;"),
							h.Tr(h.Td(h.Style("padding: 32px; color: #111827; font-size: 16px;"),
								g.Group(paragraphs),
								cta,
							)),
							h.Tr(h.Td(h.Style(footerStyle),
								g.Text("This email was sent to {{email}}"),
							)),
						),
					)),
				),
			),
		),
	)

	var buf bytes.Buffer
	_ = doc.Render(&buf)
	return buf.String()
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
