package main

import (
	"context"
	"log"

	"velox/internal/bot"
	"velox/internal/config"
	"velox/internal/events"
	"velox/internal/notify"
	"velox/internal/radar"
	"velox/internal/storage"
	"velox/internal/store"
	"velox/internal/watch"
	"velox/pkg/graceful"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
)

// Scheduled update checks run at 08:00 and 16:00.
const checkSchedule = "0 8,16 * * *"

func main() {
	config.LoadEnv()

	cfg, err := config.Load(config.DataDir())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to initialize the bot API: %v", err)
	}
	log.Printf("Authorized as @%s", api.Self.UserName)

	fetcher := radar.NewClient()
	snapshots := store.NewSnapshotStore(cfg.DataDir)
	subscribers := store.NewSubscriberStore(cfg.DataDir)

	var opts []watch.Option
	if cfg.KafkaBroker != "" && cfg.KafkaTopic != "" {
		publisher := events.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer publisher.Close()
		opts = append(opts, watch.WithEvents(publisher))
		log.Printf("Publishing change events to Kafka topic %s on %s", cfg.KafkaTopic, cfg.KafkaBroker)
	}
	if cfg.ArchiveBucket != "" {
		archive, err := storage.NewS3Archive(cfg.ArchiveBucket)
		if err != nil {
			log.Fatalf("Failed to set up the snapshot archive: %v", err)
		}
		if err := archive.EnsureBucket(ctx); err != nil {
			log.Fatalf("Failed to create the archive bucket: %v", err)
		}
		opts = append(opts, watch.WithArchive(archive))
		log.Printf("Archiving snapshots to bucket %s", cfg.ArchiveBucket)
	}

	notifier := notify.New(bot.NewSender(api), subscribers)
	watcher := watch.New(fetcher, snapshots, notifier, opts...)

	c := cron.New()
	if _, err := c.AddFunc(checkSchedule, func() {
		if _, err := watcher.Run(ctx, watch.Options{Persist: true}); err != nil {
			log.Printf("Scheduled update check failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule update checks: %v", err)
	}
	c.Start()
	defer c.Stop()

	bot.New(api, fetcher, subscribers, watcher).Run(ctx)
	log.Println("Bot stopped.")
}
