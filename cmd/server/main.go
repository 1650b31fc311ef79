// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/config"
	"github.com/unclebandit/campaign-dashboard/internal/controller"
	"github.com/unclebandit/campaign-dashboard/internal/db"
	"github.com/unclebandit/campaign-dashboard/internal/handler"
	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
	"github.com/unclebandit/campaign-dashboard/internal/session"
)

const (
	sessionTTL   = "168 hours"
	purgeEvery   = time.Hour
	shutdownWait = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openTokenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	client := api.New(cfg.APIURL, session.NewManager(store),
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithLogger(logger),
	)

	q := queue.NewInMemoryQueue()
	if err := queue.StartStatusLogSubscriber(q, logger); err != nil {
		logger.Error("Failed to subscribe status logger", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL != "" {
		broker, err := queue.DialAMQP(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, status events stay in-process", "error", err)
		} else {
			defer broker.Close()
			if err := queue.Forward(q, broker, queue.TopicCampaignStatus); err != nil {
				logger.Error("Failed to forward status events", "error", err)
			}
			logger.Info("Forwarding status events to AMQP", "queue", cfg.AMQPQueue)
		}
	}

	sessions := &controller.Sessions{
		Store:  controller.NewCookieStore(cfg.SessionSecret, cfg.SecureCookies),
		Logger: logger,
	}
	ctrl := controller.New(client, sessions, logger)
	ctrl.PollInterval = cfg.PollInterval
	ctrl.Watcher = service.NewCampaignWatcher(client.Campaigns, q, cfg.PollInterval)
	ctrl.Watcher.Logger = logger
	ctrl.WatchWithin(ctx)

	statusHandler := handler.NewCampaignHandler(client.Campaigns, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           ctrl.Routes(statusHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", "addr", cfg.HTTPAddr, "api_url", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	ctrl.Wait()
	q.Wait()
}

// openTokenStore uses Postgres when DATABASE_URL is set and keeps tokens in
// memory otherwise.
func openTokenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (session.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, sessions are kept in memory")
		return session.NewMemoryStore(), func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	repo := &repository.SessionRepository{DB: conn}

	go func() {
		ticker := time.NewTicker(purgeEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := repo.PurgeStale(ctx, sessionTTL)
				if err != nil {
					logger.Warn("Failed to purge stale sessions", "error", err)
					continue
				}
				if n > 0 {
					logger.Info("Purged stale sessions", "count", n)
				}
			}
		}
	}()

	return repo, func() { conn.Close() }, nil
}
