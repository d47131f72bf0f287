package image

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/andreyxaxa/Image-Ingest/internal/infrastructure"
	"github.com/andreyxaxa/Image-Ingest/internal/repo"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
)

// ImageQueryUseCase hands out CDN read URLs for images that reached Ready.
type ImageQueryUseCase struct {
	records repo.ImageRecordRepo
	signer  infrastructure.ReadURLSigner

	readExpiry time.Duration
	now        func() time.Time
}

func New(records repo.ImageRecordRepo, signer infrastructure.ReadURLSigner, readExpiry time.Duration) *ImageQueryUseCase {
	return &ImageQueryUseCase{
		records:    records,
		signer:     signer,
		readExpiry: readExpiry,
		now:        time.Now,
	}
}

func (uc *ImageQueryUseCase) GetReadURL(ctx context.Context, id entity.ImageID) (*dto.ReadURL, error) {
	record, err := uc.records.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL - uc.records.FindByID: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL - id=%s: %w", id, errs.ErrRecordNotFound)
	}
	if record.Status != entity.ImageStatusReady {
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL - id=%s status=%s: %w", id, record.Status, errs.ErrImageNotReady)
	}

	readURL, err := uc.sign(record)
	if err != nil {
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL - uc.sign: %w", err)
	}

	return readURL, nil
}

// GetReadURLs signs every Ready record among ids. Unknown and not yet Ready
// ids are skipped; duplicates are collapsed.
func (uc *ImageQueryUseCase) GetReadURLs(ctx context.Context, ids []entity.ImageID) ([]dto.ReadURL, error) {
	unique := make([]entity.ImageID, 0, len(ids))
	seen := make(map[entity.ImageID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	records, err := uc.records.FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURLs - uc.records.FindByIDs: %w", err)
	}

	urls := make([]dto.ReadURL, 0, len(records))
	for _, record := range records {
		if record.Status != entity.ImageStatusReady {
			continue
		}

		readURL, err := uc.sign(record)
		if err != nil {
			return nil, fmt.Errorf("ImageQueryUseCase - GetReadURLs - uc.sign: %w", err)
		}
		urls = append(urls, *readURL)
	}

	return urls, nil
}

func (uc *ImageQueryUseCase) sign(record *entity.ImageRecord) (*dto.ReadURL, error) {
	expiresAt := uc.now().UTC().Add(uc.readExpiry)

	signed, err := uc.signer.SignReadURL(record.ObjectKey, uc.readExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.ReadURL{
		ImageID:   record.ID,
		URL:       signed,
		ExpiresAt: expiresAt,
	}, nil
}
