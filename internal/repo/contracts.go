package repo

import (
	"context"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
)

type (
	// ImageRecordRepo persists ImageRecords. All methods are safe for concurrent use.
	ImageRecordRepo interface {
		// Save inserts the record or overwrites every mutable column of an existing one.
		Save(ctx context.Context, record *entity.ImageRecord) error
		// FindByID returns nil, nil when no record has id.
		FindByID(ctx context.Context, id entity.ImageID) (*entity.ImageRecord, error)
		// FindByIDs omits missing ids; result order is unspecified.
		FindByIDs(ctx context.Context, ids []entity.ImageID) ([]*entity.ImageRecord, error)
		// Update applies transform to the stored record. An absent id is a no-op.
		Update(ctx context.Context, id entity.ImageID, transform func(entity.ImageRecord) entity.ImageRecord) error
	}

	// ObjectStorage issues upload credentials and inspects objects in a bucket.
	ObjectStorage interface {
		PresignUpload(ctx context.Context, bucket, key, contentType string, expiry time.Duration) (*dto.PresignedUpload, error)
		GetObjectMetadata(ctx context.Context, bucket, key string) (*dto.ObjectMetadata, error)
		DeleteObject(ctx context.Context, bucket, key string) error
	}
)
