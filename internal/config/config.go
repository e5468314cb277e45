// Package config loads the bot configuration: the Telegram token from
// config.json plus optional integrations from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// botConfig mirrors the config.json document.
type botConfig struct {
	BotToken string `json:"BOT_TOKEN"`
}

// Config holds everything the binaries need at startup.
type Config struct {
	// BotToken authenticates against the Telegram bot API.
	BotToken string

	// DataDir is where the snapshot and registry files live.
	DataDir string

	// Optional integrations; empty means disabled.
	KafkaBroker   string
	KafkaTopic    string
	ArchiveBucket string
}

// LoadEnv loads a .env file when present; otherwise the process
// environment is used as-is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

// DataDir returns the configured state directory, defaulting to the
// working directory.
func DataDir() string {
	if dir := os.Getenv("VELOX_DATA_DIR"); dir != "" {
		return dir
	}
	return "."
}

// Load reads config.json from dir along with the optional environment
// settings. When config.json is missing or unreadable a template is
// written for the operator to fill in, and an error says so. An empty
// token is also an error: the bot refuses to start without one.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		DataDir:       dir,
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		ArchiveBucket: os.Getenv("VELOX_ARCHIVE_BUCKET"),
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	var bc botConfig
	if err != nil || json.Unmarshal(data, &bc) != nil {
		if writeErr := writeTemplate(path); writeErr != nil {
			return nil, fmt.Errorf("no valid %s and couldn't write a template: %v", path, writeErr)
		}
		return nil, fmt.Errorf("no valid %s found: a template has been created, but you need to fill in your bot's token", path)
	}
	if bc.BotToken == "" {
		return nil, fmt.Errorf("no BOT_TOKEN in %s, please add it", path)
	}
	cfg.BotToken = bc.BotToken
	return cfg, nil
}

func writeTemplate(path string) error {
	data, err := json.MarshalIndent(botConfig{}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
