package controller_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/controller"
	"github.com/unclebandit/campaign-dashboard/internal/handler"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/service"
	"github.com/unclebandit/campaign-dashboard/internal/session"
)

const token = "tok-1"

// backend is a minimal stand-in for the campaign REST API.
type backend struct {
	mu        sync.Mutex
	revoked   bool
	campaigns map[string]*model.Campaign
	started   []string
	gets      int
}

func strp(s string) *string { return &s }

func newBackend() *backend {
	return &backend{campaigns: map[string]*model.Campaign{
		"c1": {ID: "c1", Name: "Launch", Status: model.CampaignSending, FromName: "Team", FromEmail: "team@example.com",
			TemplateID: strp("t1"), CsvFileID: strp("f1"), Stats: model.CampaignStats{Total: 10, Sent: 4}},
		"c2": {ID: "c2", Name: "Draft", Status: model.CampaignDraft, CsvFileID: strp("f1")},
	}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *backend) authorized(w http.ResponseWriter, r *http.Request) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.revoked || r.Header.Get("Authorization") != "Bearer "+token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return false
	}
	return true
}

func (b *backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body api.SignInRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid login credentials"})
			return
		}
		writeJSON(w, http.StatusOK, model.AuthResponse{
			User:    &model.User{ID: "u1", Email: body.Email},
			Session: &model.Session{AccessToken: token, RefreshToken: "ref-1", ExpiresIn: 3600},
		})
	})
	r.Post("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if b.authorized(w, r) {
			writeJSON(w, http.StatusOK, model.User{ID: "u1", Email: "jane@example.com"})
		}
	})
	r.Get("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if b.authorized(w, r) {
			writeJSON(w, http.StatusOK, model.Profile{ID: "p1", Role: "admin"})
		}
	})
	r.Get("/api/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		b.mu.Lock()
		b.gets++
		c, ok := b.campaigns[chi.URLParam(r, "id")]
		var snapshot model.Campaign
		if ok {
			snapshot = *c
		}
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Campaign not found"})
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	})
	r.Get("/api/campaigns/{id}/emails", func(w http.ResponseWriter, r *http.Request) {
		if b.authorized(w, r) {
			writeJSON(w, http.StatusOK, model.Page[model.CampaignEmail]{
				Data: []model.CampaignEmail{{ID: "e1", EmailAddress: "bob@example.com", Status: "sent"}},
			})
		}
	})
	r.Post("/api/campaigns/{id}/start", func(w http.ResponseWriter, r *http.Request) {
		if b.authorized(w, r) {
			b.mu.Lock()
			b.started = append(b.started, chi.URLParam(r, "id"))
			b.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		}
	})
	return r
}

func (b *backend) getCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gets
}

func (b *backend) set(id, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.campaigns[id].Status = status
}

type dashboard struct {
	t       *testing.T
	server  *httptest.Server
	browser *http.Client
	backend *backend
	ctrl    *controller.Controller
}

func newDashboard(t *testing.T) *dashboard {
	t.Helper()
	b := newBackend()
	backendSrv := httptest.NewServer(b.routes())
	t.Cleanup(backendSrv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := apiClient(backendSrv.URL, logger)
	sess := &controller.Sessions{Store: controller.NewCookieStore("test-secret-test-secret-test-sec", false), Logger: logger}
	ctrl := controller.New(client, sess, logger)

	srv := httptest.NewServer(ctrl.Routes(handler.NewCampaignHandler(client.Campaigns, logger)))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	browser := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &dashboard{t: t, server: srv, browser: browser, backend: b, ctrl: ctrl}
}

func apiClient(baseURL string, logger *slog.Logger) *api.Client {
	return api.New(baseURL, session.NewManager(session.NewMemoryStore()), api.WithLogger(logger))
}

func (d *dashboard) get(path string) (*http.Response, string) {
	d.t.Helper()
	resp, err := d.browser.Get(d.server.URL + path)
	require.NoError(d.t, err)
	return resp, readBody(d.t, resp)
}

func (d *dashboard) post(path string, form url.Values) (*http.Response, string) {
	d.t.Helper()
	resp, err := d.browser.PostForm(d.server.URL+path, form)
	require.NoError(d.t, err)
	return resp, readBody(d.t, resp)
}

func (d *dashboard) login() {
	d.t.Helper()
	resp, _ := d.post("/login", url.Values{"email": {"jane@example.com"}, "password": {"secret123"}})
	require.Equal(d.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(d.t, "/", resp.Header.Get("Location"))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestPagesRequireSignIn(t *testing.T) {
	d := newDashboard(t)

	resp, _ := d.get("/campaigns")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, body := d.get("/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sign in")
}

func TestLoginValidation(t *testing.T) {
	d := newDashboard(t)

	resp, body := d.post("/login", url.Values{"email": {"not-an-email"}, "password": {"123"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "not-an-email")
	assert.Contains(t, body, "Password must be at least 6 characters")
}

func TestLoginWrongPassword(t *testing.T) {
	d := newDashboard(t)

	resp, body := d.post("/login", url.Values{"email": {"jane@example.com"}, "password": {"wrong-password"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Invalid email or password.")
}

func TestCampaignDetailPollsWhileSending(t *testing.T) {
	d := newDashboard(t)
	d.login()

	resp, body := d.get("/campaigns/c1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome back, jane@example.com!")
	assert.Contains(t, body, "Launch")
	assert.Contains(t, body, "4 / 10 sent")
	assert.Contains(t, body, `hx-get="/campaigns/c1/progress"`)
	assert.Contains(t, body, `hx-trigger="every 3s"`)
	assert.Contains(t, body, "bob@example.com")
	assert.Contains(t, body, `action="/campaigns/c1/pause"`)

	d.backend.set("c1", model.CampaignSent)
	resp, body = d.get("/campaigns/c1/progress")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="campaign-progress"`)
	assert.NotContains(t, body, "hx-get")
}

func TestStartWithoutTemplateIsRejected(t *testing.T) {
	d := newDashboard(t)
	d.login()

	resp, _ := d.post("/campaigns/c2/start", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/campaigns/c2", resp.Header.Get("Location"))
	assert.Empty(t, d.backend.started)

	_, body := d.get("/campaigns/c2")
	assert.Contains(t, body, "select a template first")
}

func TestStartCampaignIsWatched(t *testing.T) {
	d := newDashboard(t)
	q := queue.NewInMemoryQueue()
	events := make(chan model.StatusEvent, 1)
	require.NoError(t, q.Subscribe(queue.TopicCampaignStatus, func(p any) error {
		events <- p.(model.StatusEvent)
		return nil
	}))
	d.ctrl.Watcher = service.NewCampaignWatcher(d.ctrl.Campaigns.Campaigns, q, 10*time.Millisecond)
	d.login()

	resp, _ := d.post("/campaigns/c1/start", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"c1"}, d.backend.started)

	// let the watcher observe "sending" before the campaign finishes
	seen := d.backend.getCount()
	require.Eventually(t, func() bool { return d.backend.getCount() > seen }, time.Second, 5*time.Millisecond)
	d.backend.set("c1", model.CampaignSent)
	d.ctrl.Wait()
	q.Wait()

	select {
	case ev := <-events:
		assert.Equal(t, "c1", ev.CampaignID)
		assert.Equal(t, model.CampaignSending, ev.From)
		assert.Equal(t, model.CampaignSent, ev.To)
	default:
		t.Fatal("expected a status event")
	}
}

func TestRevokedSessionRedirectsToLogin(t *testing.T) {
	d := newDashboard(t)
	d.login()

	d.backend.mu.Lock()
	d.backend.revoked = true
	d.backend.mu.Unlock()

	resp, _ := d.get("/campaigns/c1")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	_, body := d.get("/login")
	assert.Contains(t, body, "Your session has expired")
}

func TestMissingCampaignRendersNotFound(t *testing.T) {
	d := newDashboard(t)
	d.login()

	resp, body := d.get("/campaigns/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Campaign not found")
}

func TestStatusEndpoint(t *testing.T) {
	d := newDashboard(t)

	resp, body := d.get("/campaigns/c1/status")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Unauthorized")

	d.login()
	resp, body = d.get("/campaigns/c1/status")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"polling":true`)
}

func TestTemplateFormValidation(t *testing.T) {
	d := newDashboard(t)
	d.login()

	resp, body := d.post("/templates", url.Values{"name": {"Welcome"}, "editor_mode": {"visual"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Subject is required")
	assert.True(t, strings.Contains(body, `value="Welcome"`))
}

func TestLogout(t *testing.T) {
	d := newDashboard(t)
	d.login()

	resp, _ := d.post("/logout", nil)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, _ = d.get("/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
