package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/andreyxaxa/Image-Ingest/config"
	"github.com/andreyxaxa/Image-Ingest/internal/app"
	"github.com/joho/godotenv"
)

const _defaultEnvFile = ".env"

func main() {
	// Config
	if err := loadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		log.Fatalf("config error: %s", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %s", err)
	}

	// Run
	app.Run(cfg)
}

// loadEnvFile fills unset variables from path, or from .env when path is
// empty. A missing file is not an error; variables already set win.
func loadEnvFile(path string) error {
	if path == "" {
		path = _defaultEnvFile
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
