package usecase

import (
	"context"

	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
)

type (
	IngestUseCase interface {
		CreatePresignedUploadURL(ctx context.Context, contentType, fileName string) (*dto.PresignedIngest, error)
	}

	ImageQueryUseCase interface {
		GetReadURL(ctx context.Context, id entity.ImageID) (*dto.ReadURL, error)
		GetReadURLs(ctx context.Context, ids []entity.ImageID) ([]dto.ReadURL, error)
	}
)
