package v1

import (
	"github.com/andreyxaxa/Image-Ingest/internal/usecase"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/andreyxaxa/Image-Ingest/pkg/metrics"
)

type V1 struct {
	ingest  usecase.IngestUseCase
	query   usecase.ImageQueryUseCase
	metrics *metrics.IngestMetrics
	logger  logger.Interface
}
