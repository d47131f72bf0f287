package v1

import (
	"github.com/andreyxaxa/Image-Ingest/internal/usecase"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/andreyxaxa/Image-Ingest/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

func NewImageRoutes(
	apiV1Group fiber.Router,
	ingest usecase.IngestUseCase,
	query usecase.ImageQueryUseCase,
	m *metrics.IngestMetrics,
	l logger.Interface,
) {
	r := &V1{ingest: ingest, query: query, metrics: m, logger: l}

	imageGroup := apiV1Group.Group("/image")
	{
		imageGroup.Post("/ingest/presigned-url", r.createPresignedURL)
		imageGroup.Get("/read-urls", r.getReadURLs)
		imageGroup.Get("/:id/read-url", r.getReadURL)
	}
}
