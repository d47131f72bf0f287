package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/andreyxaxa/Image-Ingest/internal/repo"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/oklog/ulid/v2"
)

type IngestUseCase struct {
	records repo.ImageRecordRepo
	storage repo.ObjectStorage

	bucket       string
	uploadExpiry time.Duration

	logger logger.Interface

	newID func() entity.ImageID
	now   func() time.Time
}

func New(
	records repo.ImageRecordRepo,
	storage repo.ObjectStorage,
	bucket string,
	uploadExpiry time.Duration,
	l logger.Interface,
) *IngestUseCase {
	return &IngestUseCase{
		records:      records,
		storage:      storage,
		bucket:       bucket,
		uploadExpiry: uploadExpiry,
		logger:       l,
		newID:        newImageID,
		now:          time.Now,
	}
}

// ulid.Make draws from a process-wide monotonic source that is safe for concurrent use.
func newImageID() entity.ImageID {
	return entity.ImageID(ulid.Make().String())
}

// CreatePresignedUploadURL validates the input, saves a Pending record and
// returns a presigned PUT URL for the record's object key. Input faults are
// returned before any side effect.
func (uc *IngestUseCase) CreatePresignedUploadURL(
	ctx context.Context,
	contentType string,
	fileName string,
) (*dto.PresignedIngest, error) {
	ct, err := validateContentType(contentType)
	if err != nil {
		return nil, err
	}

	if err = validateFileName(fileName); err != nil {
		return nil, err
	}

	id := uc.newID()
	record := entity.NewPendingImageRecord(id, ct, fileName, uc.now())

	// 1. record first, so every issued URL has a record behind it
	err = uc.records.Save(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("IngestUseCase - CreatePresignedUploadURL - uc.records.Save: %w", err)
	}

	// 2. presign
	upload, err := uc.storage.PresignUpload(ctx, uc.bucket, record.ObjectKey, ct.String(), uc.uploadExpiry)
	if err != nil {
		uc.logger.Warn("presign failed, pending record left without url: id=%s key=%s", id, record.ObjectKey)
		return nil, fmt.Errorf("IngestUseCase - CreatePresignedUploadURL - uc.storage.PresignUpload: %w", err)
	}

	return &dto.PresignedIngest{
		ImageID:   id,
		UploadURL: upload.URL,
		ExpiresAt: upload.ExpiresAt,
	}, nil
}
