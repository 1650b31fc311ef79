package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/campaign-dashboard/internal/handler"
)

// Routes mounts every dashboard page plus the JSON status endpoint.
func (c *Controller) Routes(status *handler.CampaignHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(c.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(c.Sessions.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/signup", c.SignupPage)
	r.Post("/signup", c.Signup)
	r.Post("/logout", c.Logout)

	// JSON clients get a 401 body instead of a redirect.
	r.Get("/campaigns/{id}/status", status.GetCampaignStatusHandler)

	r.Group(func(r chi.Router) {
		r.Use(c.RequireAuth)

		r.Get("/", c.Dashboard)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", c.ListCampaigns)
			r.Get("/new", c.NewCampaign)
			r.Post("/", c.CreateCampaign)
			r.Get("/{id}", c.ShowCampaign)
			r.Get("/{id}/progress", c.CampaignProgress)
			r.Post("/{id}/start", c.StartCampaign())
			r.Post("/{id}/pause", c.PauseCampaign())
			r.Post("/{id}/cancel", c.CancelCampaign())
			r.Post("/{id}/duplicate", c.DuplicateCampaign)
			r.Post("/{id}/delete", c.DeleteCampaign)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", c.ListTemplates)
			r.Get("/new", c.NewTemplate)
			r.Post("/", c.CreateTemplate)
			r.Get("/{id}", c.ShowTemplate)
			r.Post("/{id}/duplicate", c.DuplicateTemplate)
			r.Post("/{id}/delete", c.DeleteTemplate)
		})

		r.Route("/csv-files", func(r chi.Router) {
			r.Get("/", c.ListCsvFiles)
			r.Post("/", c.UploadCsvFile)
			r.Get("/{id}", c.ShowCsvFile)
			r.Post("/{id}/filter", c.FilterCsvFile)
			r.Post("/{id}/delete", c.DeleteCsvFile)
		})

		r.Route("/ads", func(r chi.Router) {
			r.Get("/", c.ListAds)
			r.Get("/new", c.NewAd)
			r.Post("/", c.CreateAd)
			r.Get("/{id}", c.ShowAd)
			r.Post("/{id}/toggle", c.ToggleAd)
			r.Post("/{id}/delete", c.DeleteAd)
		})

		r.Get("/reports", c.ReportsPage)
		r.Get("/reports/campaigns/{id}", c.CampaignReport)

		r.Get("/images", c.ListImages)
		r.Post("/images", c.UploadImage)
		r.Post("/images/{filename}/delete", c.DeleteImage)
	})

	return r
}

// requestLogger logs one line per request through slog.
func (c *Controller) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		c.Logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
