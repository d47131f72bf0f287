package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Image-Ingest/config"
	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi"
	"github.com/andreyxaxa/Image-Ingest/internal/infrastructure/cdn"
	"github.com/andreyxaxa/Image-Ingest/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Ingest/internal/usecase/image"
	"github.com/andreyxaxa/Image-Ingest/internal/usecase/ingest"
	"github.com/andreyxaxa/Image-Ingest/migrations"
	"github.com/andreyxaxa/Image-Ingest/pkg/httpserver"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/andreyxaxa/Image-Ingest/pkg/metrics"
	"github.com/andreyxaxa/Image-Ingest/pkg/postgres"
	"github.com/andreyxaxa/Image-Ingest/pkg/s3client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level, logger.Format(cfg.Log.Format))

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey,
		s3client.Region(cfg.S3.Region),
		s3client.UsePathStyle(cfg.S3.UsePathStyle),
		s3client.ConnAttempts(cfg.S3.ConnAttempts),
		s3client.ConnTimeout(cfg.S3.ConnTimeout),
	)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL,
		postgres.MaxPoolSize(cfg.PG.PoolMax),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.ConnTimeout(cfg.PG.ConnTimeout),
	)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// migrations run once the pool has reached the database
	if cfg.PG.MigrateOnStart {
		version, err := postgres.Migrate(cfg.PG.URL, migrations.FS)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - postgres.Migrate: %w", err))
		}
		l.Info("app - Run - schema version %d", version)
	}

	// cdn
	signer, err := cdn.New(cfg.CDN.Domain, cfg.CDN.KeyPairID, cfg.CDN.PrivateKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - cdn.New: %w", err))
	}

	records := persistent.NewImageRecordRepo(pg)
	storage := persistent.NewImageObjectStorage(s3c, l)

	// Use-Case
	ingestUseCase := ingest.New(records, storage, cfg.S3.Bucket, cfg.S3.UploadExpiry, l)
	imageQueryUseCase := image.New(records, signer, cfg.CDN.ReadExpiry)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ingestMetrics := metrics.NewIngestMetrics(registry)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)
	restapi.NewRouter(httpServer.App, cfg, ingestUseCase, imageQueryUseCase, ingestMetrics, registry, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
