package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/busbooking/config"
	"github.com/Domenick1991/busbooking/internal/archive"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/logger"
	"github.com/Domenick1991/busbooking/internal/notify"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if !cfg.Kafka.Enabled() {
		lg.Fatal("worker needs kafka brokers and an events topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := cfg.Database.DSN()
	if err := archive.Migrate(dsn); err != nil {
		lg.Fatal("migrate archive", zap.Error(err))
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		lg.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	events := archive.NewPGArchive(pool)
	sender := notify.NewSender(lg.Named("notify"))

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic)
	defer consumer.Close()

	lg.Info("worker started",
		zap.String("topic", cfg.Kafka.EventsTopic),
		zap.String("group", cfg.Kafka.GroupID),
	)

	err = consumer.Consume(ctx, newHandler(events, sender, lg))
	if err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("consumer stopped", zap.Error(err))
		return
	}
	lg.Info("worker stopped")
}

type notifier interface {
	Send(ctx context.Context, event kafka.Event) error
}

// newHandler archives every decodable event and then passes it on for
// notification. Only an archive failure stops the consumer.
func newHandler(events archive.EventArchive, sender notifier, lg *zap.Logger) func(context.Context, kafkaGo.Message) error {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			lg.Warn("skipping undecodable event",
				zap.Int64("offset", msg.Offset),
				zap.ByteString("key", msg.Key),
				zap.Error(err),
			)
			return nil
		}

		if err := events.Record(ctx, event); err != nil {
			return err
		}
		if err := sender.Send(ctx, event); err != nil {
			lg.Warn("notification failed", zap.String("event_id", event.ID), zap.Error(err))
		}
		return nil
	}
}
