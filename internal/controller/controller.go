// Package controller serves the dashboard's HTML pages.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	g "maragu.dev/gomponents"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/service"
	"github.com/unclebandit/campaign-dashboard/internal/session"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

const sessionExpiredMessage = "Your session has expired. Please sign in again."

type Controller struct {
	Auth      *service.AuthService
	Campaigns *service.CampaignService
	Templates *service.TemplateService
	CSV       *service.CSVService
	Ads       *service.AdvertisementService
	Reports   *service.ReportService
	Images    *service.ImageService
	Sessions  *Sessions
	Logger    *slog.Logger

	// Watcher, when set, follows campaigns started from the dashboard and
	// publishes their status changes.
	Watcher      *service.CampaignWatcher
	WatchTimeout time.Duration

	// PollInterval paces the htmx refresh of a sending campaign's progress.
	PollInterval time.Duration

	watchCtx context.Context
	watches  sync.WaitGroup
}

// New wires every page service to the shared backend client.
func New(client *api.Client, sess *Sessions, logger *slog.Logger) *Controller {
	v := form.NewValidator()
	return &Controller{
		Auth:      &service.AuthService{Auth: client.Auth, Tokens: client.Tokens(), Validator: v, Logger: logger},
		Campaigns: &service.CampaignService{Campaigns: client.Campaigns, Validator: v, Logger: logger},
		Templates: &service.TemplateService{Templates: client.Templates, Validator: v},
		CSV:       &service.CSVService{CsvFiles: client.CsvFiles},
		Ads:       &service.AdvertisementService{Ads: client.Advertisements, Validator: v},
		Reports:   &service.ReportService{Reports: client.Reports, Campaigns: client.Campaigns},
		Images:    &service.ImageService{Images: client.Images},
		Sessions:  sess,
		Logger:    logger,

		WatchTimeout: 2 * time.Hour,
		PollInterval: service.DefaultPollInterval,
		watchCtx:     context.Background(),
	}
}

// WatchWithin makes background watches stop when ctx is cancelled.
func (c *Controller) WatchWithin(ctx context.Context) {
	c.watchCtx = ctx
}

// Wait blocks until background watches have returned.
func (c *Controller) Wait() {
	c.watches.Wait()
}

// watch follows campaign id in the background using the visitor's session.
func (c *Controller) watch(r *http.Request, id string) {
	if c.Watcher == nil {
		return
	}
	ctx := session.WithID(c.watchCtx, session.IDFromContext(r.Context()))
	c.watches.Add(1)
	go func() {
		defer c.watches.Done()
		ctx, cancel := context.WithTimeout(ctx, c.WatchTimeout)
		defer cancel()
		last, err := c.Watcher.Watch(ctx, id, nil)
		if err != nil && !errors.Is(err, context.Canceled) {
			c.Logger.Warn("Stopped watching campaign", "campaign_id", id, "error", err)
			return
		}
		if last != nil {
			c.Logger.Debug("Finished watching campaign", "campaign_id", id, "status", last.Status)
		}
	}()
}

type identityKey struct{}

func withIdentity(ctx context.Context, id *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func identityFrom(ctx context.Context) *service.Identity {
	id, _ := ctx.Value(identityKey{}).(*service.Identity)
	return id
}

// RequireAuth redirects visitors without a usable backend session to the
// sign-in page.
func (c *Controller) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := c.Auth.Current(r.Context())
		if err != nil || id == nil {
			if err != nil {
				c.Logger.Info("Session rejected by backend", "error", err)
				c.Sessions.FlashError(w, r, sessionExpiredMessage)
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

// props builds the layout props, consuming pending flashes.
func (c *Controller) props(w http.ResponseWriter, r *http.Request) view.PageProps {
	p := view.PageProps{Flashes: c.Sessions.Flashes(w, r)}
	if id := identityFrom(r.Context()); id != nil {
		p.User = id.User.DisplayName()
	}
	return p
}

func (c *Controller) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		c.Logger.Error("Failed to render page", "error", err)
	}
}

func (c *Controller) redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fail reports err after a state-changing request: flash it and go back to
// fallback, or to sign-in when the backend session is gone.
func (c *Controller) fail(w http.ResponseWriter, r *http.Request, err error, fallback, message string) {
	if expired(err) {
		c.Sessions.FlashError(w, r, sessionExpiredMessage)
		c.redirect(w, r, "/login")
		return
	}
	c.Logger.Warn("Request failed", "path", r.URL.Path, "error", err)
	c.Sessions.FlashError(w, r, appErrors.UserMessage(err, message))
	c.redirect(w, r, fallback)
}

// failPage reports err when a page's data could not be loaded.
func (c *Controller) failPage(w http.ResponseWriter, r *http.Request, err error, message string) {
	if expired(err) {
		c.Sessions.FlashError(w, r, sessionExpiredMessage)
		c.redirect(w, r, "/login")
		return
	}
	status := http.StatusBadGateway
	if appErrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.Logger.Warn("Page load failed", "path", r.URL.Path, "error", err)
	c.render(w, status, view.ErrorPage(c.props(w, r), appErrors.UserMessage(err, message)))
}

func expired(err error) bool {
	return appErrors.IsUnauthorized(err) || errors.Is(err, appErrors.ErrSessionExpired)
}

// fieldErrors extracts per-field messages when err is a validation failure.
func fieldErrors(err error) (view.FieldErrors, bool) {
	var ve *appErrors.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return view.FieldErrors(ve.Fields), true
}

func formValues(r *http.Request, key string) []string {
	if r.PostForm == nil {
		_ = r.ParseForm()
	}
	return r.PostForm[key]
}

// back returns the local page the request came from, or fallback.
func back(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	return ref.Path
}

func userMessage(err error, fallback string) string {
	return appErrors.UserMessage(err, fallback)
}
