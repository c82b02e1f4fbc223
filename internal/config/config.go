package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Blob storage
	StorageConnectionString string `env:"AZURE_WEB_JOBS_STORAGE,required"`
	BlobContainerName       string `env:"BLOB_CONTAINER_NAME" envDefault:"users"`

	// Speech service
	SpeechServiceRegion string `env:"SPEECH_SERVICE_REGION"`
	SpeechServiceKey    string `env:"SPEECH_SERVICE_KEY"`

	// Chat completion and image generation run on separate deployments.
	ChatEndpoint    string `env:"OPENAI_CHAT_ENDPOINT,required"`
	ChatAPIKey      string `env:"OPENAI_CHAT_API_KEY,required"`
	ChatDeployment  string `env:"OPENAI_CHAT_DEPLOYMENT" envDefault:"gpt-4o"`
	ImageEndpoint   string `env:"OPENAI_IMAGE_ENDPOINT"`
	ImageAPIKey     string `env:"OPENAI_IMAGE_API_KEY"`
	ImageDeployment string `env:"OPENAI_IMAGE_DEPLOYMENT" envDefault:"dall-e-3"`

	// Seed history uploaded on sign-up
	SeedHistoryPath string `env:"SEED_HISTORY_PATH" envDefault:"data/chat_hist.json"`

	// Local time used in prompts and history timestamps
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Seoul"`

	// Cron spec for the recurring spoken reminder; empty disables it
	ReminderCronSpec string `env:"REMINDER_CRON_SPEC"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
