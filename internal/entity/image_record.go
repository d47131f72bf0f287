package entity

import "time"

const ObjectKeyPrefix = "ingest/"

// ImageID is a ULID string: 26 Crockford base32 characters, time ordered.
type ImageID string

func (id ImageID) String() string {
	return string(id)
}

// ObjectKey is the storage key an image with this id is uploaded to.
func (id ImageID) ObjectKey() string {
	return ObjectKeyPrefix + string(id)
}

// ImageRecord tracks one intended upload. ID, ObjectKey and CreatedAt are
// fixed at creation.
type ImageRecord struct {
	ID ImageID `json:"id"`

	Status      ImageStatus `json:"status"`
	ContentType ContentType `json:"content_type"`
	FileName    string      `json:"file_name"`
	SizeBytes   *int64      `json:"size_bytes,omitempty"` // set on confirmation
	ObjectKey   string      `json:"object_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPendingImageRecord builds the record persisted before an upload URL is issued.
func NewPendingImageRecord(id ImageID, contentType ContentType, fileName string, now time.Time) *ImageRecord {
	now = now.UTC().Truncate(time.Microsecond)

	return &ImageRecord{
		ID:          id,
		Status:      ImageStatusPending,
		ContentType: contentType,
		FileName:    fileName,
		ObjectKey:   id.ObjectKey(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
