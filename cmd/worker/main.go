package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"github.com/unclebandit/campaign-dashboard/internal/config"
	"github.com/unclebandit/campaign-dashboard/internal/db"
	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	broker, err := queue.DialAMQP(cfg.AMQPURL, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer broker.Close()

	var rec recorder
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		rec = newRecorder(conn)
	} else {
		logger.Warn("DATABASE_URL not set, status events are only logged")
	}

	if err := run(ctx, broker, rec, broker.NotifyClose(), logger); err != nil {
		logger.Error("Worker stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}

type recorder interface {
	Insert(ctx context.Context, ev model.StatusEvent) error
}

func newRecorder(conn *sql.DB) recorder {
	return &repository.StatusEventRepository{DB: conn}
}

// run drains status events from broker into an in-process queue that logs
// them and, when rec is set, records them. It returns nil once ctx is done
// and an error when the broker connection drops.
func run(ctx context.Context, broker queue.Queue, rec recorder, closed <-chan *amqp.Error, logger *slog.Logger) error {
	events := queue.NewInMemoryQueue()
	defer events.Wait()

	if err := queue.StartStatusLogSubscriber(events, logger); err != nil {
		return err
	}
	if rec != nil {
		// in-flight inserts finish after shutdown starts
		dbCtx := context.WithoutCancel(ctx)
		err := events.Subscribe(queue.TopicCampaignStatus, func(payload any) error {
			ev, ok := payload.(model.StatusEvent)
			if !ok {
				return nil
			}
			return rec.Insert(dbCtx, ev)
		})
		if err != nil {
			return err
		}
	}

	if err := queue.Forward(broker, events, queue.TopicCampaignStatus); err != nil {
		return fmt.Errorf("consume status events: %w", err)
	}
	logger.Info("Worker running, waiting for status events")

	select {
	case <-ctx.Done():
		return nil
	case amqpErr, ok := <-closed:
		if !ok || amqpErr == nil {
			return errors.New("broker connection closed")
		}
		return fmt.Errorf("broker connection lost: %w", amqpErr)
	}
}
