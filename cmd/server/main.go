package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"carebridge/internal/api"
	"carebridge/internal/assistant"
	"carebridge/internal/blob"
	"carebridge/internal/config"
	"carebridge/internal/image"
	"carebridge/internal/llm"
	"carebridge/internal/scheduler"
	"carebridge/internal/speech"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", cfg.Timezone, err)
	}

	store, err := blob.NewAzureStore(cfg.StorageConnectionString, cfg.BlobContainerName)
	if err != nil {
		log.Fatalf("failed to init blob store: %v", err)
	}

	chatClient := llm.NewAzureOpenAI(cfg.ChatEndpoint, cfg.ChatAPIKey, cfg.ChatDeployment)
	imageGen := image.NewAzureOpenAI(cfg.ImageEndpoint, cfg.ImageAPIKey, cfg.ImageDeployment)
	synth := speech.NewAzureSynthesizer(cfg.SpeechServiceRegion, cfg.SpeechServiceKey)

	svc := assistant.New(store, chatClient, imageGen, synth, loc, cfg.SeedHistoryPath)

	sched := scheduler.New(loc)
	sched.SetReminderFunction(func(ctx context.Context) error {
		return svc.SetReminder(ctx, assistant.DefaultUserID, assistant.DefaultGreeting)
	})
	if spec := reminderSpec(cfg, svc); spec != "" {
		if err := sched.Start(spec); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	mux := http.NewServeMux()
	api.NewHandler(svc).Register(mux)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting assistant backend on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// reminderSpec resolves the cron spec for the spoken reminder: the env
// config wins, the stored global schedule blob is the fallback.
func reminderSpec(cfg *config.Config, svc *assistant.Service) string {
	if cfg.ReminderCronSpec != "" {
		return cfg.ReminderCronSpec
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	spec, err := svc.Schedule(ctx)
	if err != nil {
		log.Printf("no stored schedule, reminder disabled: %v", err)
		return ""
	}
	return spec
}
