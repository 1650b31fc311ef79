package controller

import (
	"net/http"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/service"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

// previewContact fills placeholders on the template preview. Company is left
// blank on purpose so missing values are visible.
var previewContact = map[string]string{
	"first_name": "Jane",
	"last_name":  "Doe",
	"full_name":  "Jane Doe",
	"email":      "jane.doe@example.com",
	"country":    "Kenya",
	"timezone":   "Africa/Nairobi",
}

func (c *Controller) ListTemplates(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	templates, err := c.Templates.List(r.Context(), search)
	if err != nil {
		c.failPage(w, r, err, "Failed to load templates")
		return
	}
	c.render(w, http.StatusOK, view.TemplatesPage(c.props(w, r), templates, search))
}

func (c *Controller) NewTemplate(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, view.NewTemplatePage(c.props(w, r), form.Template{}, nil))
}

func (c *Controller) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	f := form.Template{
		Name:       r.FormValue("name"),
		Subject:    r.FormValue("subject"),
		EditorMode: r.FormValue("editor_mode"),
		BodyText:   r.FormValue("body_text"),
		CTAText:    r.FormValue("cta_text"),
		CTALink:    r.FormValue("cta_link"),
		CustomHTML: r.FormValue("custom_html"),
	}
	t, err := c.Templates.Create(r.Context(), f)
	if err != nil {
		if errs, ok := fieldErrors(err); ok {
			c.render(w, http.StatusUnprocessableEntity, view.NewTemplatePage(c.props(w, r), f, errs))
			return
		}
		c.fail(w, r, err, "/templates/new", "Failed to create template")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Template created")
	c.redirect(w, r, "/templates/"+t.ID)
}

func (c *Controller) ShowTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := c.Templates.Get(r.Context(), idParam(r))
	if err != nil {
		c.failPage(w, r, err, "Failed to load template")
		return
	}
	body := ""
	if t.BodyHTML != nil {
		body = *t.BodyHTML
	}
	subject := service.RenderPreview(t.Subject, previewContact)
	c.render(w, http.StatusOK, view.TemplatePage(c.props(w, r), t, subject, service.RenderPreviewHTML(body, previewContact)))
}

func (c *Controller) DuplicateTemplate(w http.ResponseWriter, r *http.Request) {
	dup, err := c.Templates.Duplicate(r.Context(), idParam(r))
	if err != nil {
		c.fail(w, r, err, "/templates", "Failed to duplicate template")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Template duplicated")
	c.redirect(w, r, "/templates/"+dup.ID)
}

func (c *Controller) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := c.Templates.Delete(r.Context(), idParam(r)); err != nil {
		c.fail(w, r, err, "/templates", "Failed to delete template")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Template deleted")
	c.redirect(w, r, "/templates")
}
