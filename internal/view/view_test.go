package view_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Campaigns - Campaign Dashboard", view.Title("Campaigns"))
	assert.Equal(t, "Campaign Dashboard", view.Title(""))
}

func TestPageNavigationOnlyWhenSignedIn(t *testing.T) {
	signedIn := render(t, view.Page(view.PageProps{Title: "Campaigns", User: "Jane", Active: "campaigns"}))
	assert.Contains(t, signedIn, "<title>Campaigns - Campaign Dashboard</title>")
	assert.Contains(t, signedIn, `href="/csv-files"`)
	assert.Contains(t, signedIn, "htmx.org")

	signedOut := render(t, view.Page(view.PageProps{Title: "Sign in"}))
	assert.NotContains(t, signedOut, `href="/csv-files"`)
}

func TestFlashesAreEscaped(t *testing.T) {
	out := render(t, view.Page(view.PageProps{Flashes: view.Flashes{
		Success: []string{"Campaign started"},
		Error:   []string{"<script>alert(1)</script>"},
	}}))
	assert.Contains(t, out, `role="status"`)
	assert.Contains(t, out, "Campaign started")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, out, "<script>alert(1)")
}

func TestCampaignProgressPollsWhileSending(t *testing.T) {
	c := &model.Campaign{ID: "c1", Status: model.CampaignSending, Stats: model.CampaignStats{Total: 10, Sent: 4, Delivered: 4, Opened: 2}}

	out := render(t, view.CampaignProgress(c, 3*time.Second))
	assert.Contains(t, out, `id="campaign-progress"`)
	assert.Contains(t, out, `hx-get="/campaigns/c1/progress"`)
	assert.Contains(t, out, `hx-trigger="every 3s"`)
	assert.Contains(t, out, `hx-swap="outerHTML"`)
	assert.Contains(t, out, "4 / 10 sent")
	assert.Contains(t, out, "width: 40%")
	assert.Contains(t, out, "50.0%")
}

func TestCampaignProgressStopsPollingOnceDone(t *testing.T) {
	for _, status := range []string{model.CampaignSent, model.CampaignPaused, model.CampaignDraft} {
		c := &model.Campaign{ID: "c1", Status: status}
		out := render(t, view.CampaignProgress(c, 3*time.Second))
		assert.NotContains(t, out, "hx-get", status)
		assert.Contains(t, out, "0 / 0 sent", status)
	}
}

func TestCampaignProgressUsesPollInterval(t *testing.T) {
	c := &model.Campaign{ID: "c1", Status: model.CampaignSending}

	assert.Contains(t, render(t, view.CampaignProgress(c, 10*time.Second)), `hx-trigger="every 10s"`)
	assert.Contains(t, render(t, view.CampaignProgress(c, 1500*time.Millisecond)), `hx-trigger="every 1500ms"`)
	assert.Contains(t, render(t, view.CampaignProgress(c, 0)), `hx-trigger="every 3s"`)
}

func TestTemplatesPageRendersTableHeaders(t *testing.T) {
	out := render(t, view.TemplatesPage(view.PageProps{User: "Jane"}, []model.Template{{ID: "t1", Name: "Welcome", Subject: "Hi"}}, ""))
	assert.Contains(t, out, `<th class="px-4 py-2">Name</th>`)
	assert.Contains(t, out, `<th class="px-4 py-2">Subject</th>`)
	assert.Contains(t, out, "Welcome")
}

func TestNewTemplatePageGroupsEditors(t *testing.T) {
	out := render(t, view.NewTemplatePage(view.PageProps{User: "Jane"}, form.Template{Name: "Welcome"}, nil))
	assert.Equal(t, 2, strings.Count(out, "<fieldset"))
	assert.Contains(t, out, "Visual editor")
	assert.Contains(t, out, "HTML editor")
	assert.Contains(t, out, `value="Welcome"`)
}

func TestTemplatePreviewIsSandboxed(t *testing.T) {
	tpl := &model.Template{ID: "t1", Name: "Welcome", Variables: []string{"name"}}

	out := render(t, view.TemplatePage(view.PageProps{User: "Jane"}, tpl, "Hi Jane", `<p onclick="x()">Hello Jane</p>`))
	assert.Contains(t, out, `sandbox=""`)
	assert.Contains(t, out, "srcdoc=\"&lt;p onclick=&#34;x()&#34;&gt;Hello Jane&lt;/p&gt;\"")
	assert.Contains(t, out, "Variables: ")
	assert.Contains(t, out, "Hi Jane")
}
