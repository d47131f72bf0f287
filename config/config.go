package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		PG      PG
		S3      S3
		CDN     CDN
		Swagger Swagger
	}

	HTTP struct {
		Port            string        `env:"HTTP_PORT,required"`
		UsePreforkMode  bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"3s"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL,required"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	PG struct {
		PoolMax        int           `env:"PG_POOL_MAX,required"`
		URL            string        `env:"PG_URL,required"`
		MigrateOnStart bool          `env:"PG_MIGRATE_ON_START" envDefault:"true"`
		ConnAttempts   int           `env:"PG_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout    time.Duration `env:"PG_CONN_TIMEOUT" envDefault:"1s"`
	}

	S3 struct {
		// empty means the regional AWS endpoint
		Endpoint       string        `env:"S3_ENDPOINT"`
		Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
		AccessKey      string        `env:"S3_ACCESS_KEY"`
		SecretKey      string        `env:"S3_SECRET_KEY"`
		Bucket         string        `env:"S3_BUCKET,required,notEmpty"`
		UsePathStyle   bool          `env:"S3_USE_PATH_STYLE" envDefault:"true"`
		UploadExpiry   time.Duration `env:"S3_UPLOAD_URL_EXPIRY" envDefault:"300s"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
		ConnAttempts   int           `env:"S3_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout    time.Duration `env:"S3_CONN_TIMEOUT" envDefault:"1s"`
	}

	CDN struct {
		Domain     string        `env:"CDN_DOMAIN,required"`
		KeyPairID  string        `env:"CDN_KEY_PAIR_ID,required"`
		PrivateKey string        `env:"CDN_PRIVATE_KEY,required,unset"`
		ReadExpiry time.Duration `env:"CDN_SIGNED_URL_EXPIRY" envDefault:"600s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if cfg.S3.UploadExpiry <= 0 || cfg.S3.UploadExpiry > 7*24*time.Hour {
		return nil, fmt.Errorf("config error: S3_UPLOAD_URL_EXPIRY must be in (0, 168h], got %s", cfg.S3.UploadExpiry)
	}

	if cfg.PG.ConnAttempts < 1 || cfg.S3.ConnAttempts < 1 {
		return nil, fmt.Errorf("config error: PG_CONN_ATTEMPTS and S3_CONN_ATTEMPTS must be at least 1, got %d and %d",
			cfg.PG.ConnAttempts, cfg.S3.ConnAttempts)
	}

	if cfg.CDN.ReadExpiry <= 0 {
		return nil, fmt.Errorf("config error: CDN_SIGNED_URL_EXPIRY must be positive, got %s", cfg.CDN.ReadExpiry)
	}

	return cfg, nil
}
