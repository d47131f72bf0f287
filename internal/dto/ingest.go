package dto

import (
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/entity"
)

// PresignedIngest is the result of the ingestion command.
type PresignedIngest struct {
	ImageID   entity.ImageID
	UploadURL string
	ExpiresAt time.Time
}

// PresignedUpload is a single-use PUT credential for one object key.
type PresignedUpload struct {
	URL       string
	ExpiresAt time.Time
}

type ObjectMetadata struct {
	SizeBytes int64
}

// ReadURL is a time-boxed CDN GET URL for a Ready image.
type ReadURL struct {
	ImageID   entity.ImageID
	URL       string
	ExpiresAt time.Time
}
