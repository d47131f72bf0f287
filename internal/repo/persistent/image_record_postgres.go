package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/andreyxaxa/Image-Ingest/pkg/postgres"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	imageRecordsTable = "image_records"

	// Columns
	idColumn          = "id"
	statusColumn      = "status"
	contentTypeColumn = "content_type"
	fileNameColumn    = "file_name"
	sizeBytesColumn   = "size_bytes"
	objectKeyColumn   = "object_key"
	createdAtColumn   = "created_at"
	updatedAtColumn   = "updated_at"

	// id, object_key and created_at are never rewritten
	upsertSuffix = "ON CONFLICT (" + idColumn + ") DO UPDATE SET " +
		statusColumn + " = EXCLUDED." + statusColumn + ", " +
		contentTypeColumn + " = EXCLUDED." + contentTypeColumn + ", " +
		fileNameColumn + " = EXCLUDED." + fileNameColumn + ", " +
		sizeBytesColumn + " = EXCLUDED." + sizeBytesColumn + ", " +
		updatedAtColumn + " = EXCLUDED." + updatedAtColumn

	_maxUpdateAttempts = 3
)

var imageRecordColumns = []string{
	idColumn,
	statusColumn,
	contentTypeColumn,
	fileNameColumn,
	sizeBytesColumn,
	objectKeyColumn,
	createdAtColumn,
	updatedAtColumn,
}

type ImageRecordRepo struct {
	*postgres.Postgres

	now func() time.Time
}

func NewImageRecordRepo(pg *postgres.Postgres) *ImageRecordRepo {
	return &ImageRecordRepo{
		Postgres: pg,
		now:      time.Now,
	}
}

// imageRecordRow is the raw column set; enums are decoded in toEntity.
type imageRecordRow struct {
	id          string
	status      string
	contentType string
	fileName    string
	sizeBytes   *int64
	objectKey   string
	createdAt   time.Time
	updatedAt   time.Time
}

func (row *imageRecordRow) dest() []any {
	return []any{
		&row.id,
		&row.status,
		&row.contentType,
		&row.fileName,
		&row.sizeBytes,
		&row.objectKey,
		&row.createdAt,
		&row.updatedAt,
	}
}

func (row *imageRecordRow) toEntity() (*entity.ImageRecord, error) {
	status, err := entity.ParseImageStatus(row.status)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w: %w", row.id, errs.ErrDecodeFailed, err)
	}

	contentType, err := entity.ParseContentType(row.contentType)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w: %w", row.id, errs.ErrDecodeFailed, err)
	}

	return &entity.ImageRecord{
		ID:          entity.ImageID(row.id),
		Status:      status,
		ContentType: contentType,
		FileName:    row.fileName,
		SizeBytes:   row.sizeBytes,
		ObjectKey:   row.objectKey,
		CreatedAt:   row.createdAt.UTC(),
		UpdatedAt:   row.updatedAt.UTC(),
	}, nil
}

func checkEnums(record *entity.ImageRecord) error {
	if !record.Status.IsValid() {
		return fmt.Errorf("%w: status %q", errs.ErrInvalidRecord, record.Status)
	}
	if !record.ContentType.IsValid() {
		return fmt.Errorf("%w: content type %q", errs.ErrInvalidRecord, record.ContentType)
	}

	return nil
}

func (r *ImageRecordRepo) Save(ctx context.Context, record *entity.ImageRecord) error {
	if err := checkEnums(record); err != nil {
		return fmt.Errorf("ImageRecordRepo - Save: %w", err)
	}

	sql, args, err := r.Builder.
		Insert(imageRecordsTable).
		Columns(imageRecordColumns...).
		Values(
			record.ID.String(),
			record.Status.String(),
			record.ContentType.String(),
			record.FileName,
			record.SizeBytes,
			record.ObjectKey,
			record.CreatedAt,
			record.UpdatedAt,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageRecordRepo - Save - r.Builder.ToSql: %w", err)
	}

	_, err = r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageRecordRepo - Save - r.Pool.Exec: %w: %w", errs.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *ImageRecordRepo) FindByID(ctx context.Context, id entity.ImageID) (*entity.ImageRecord, error) {
	sql, args, err := r.Builder.
		Select(imageRecordColumns...).
		From(imageRecordsTable).
		Where(squirrel.Eq{idColumn: id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageRecordRepo - FindByID - r.Builder.ToSql: %w", err)
	}

	var row imageRecordRow
	err = r.Pool.QueryRow(ctx, sql, args...).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ImageRecordRepo - FindByID - r.Pool.QueryRow: %w: %w", errs.ErrStoreUnavailable, err)
	}

	record, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("ImageRecordRepo - FindByID - row.toEntity: %w", err)
	}

	return record, nil
}

func (r *ImageRecordRepo) FindByIDs(ctx context.Context, ids []entity.ImageID) ([]*entity.ImageRecord, error) {
	if len(ids) == 0 {
		return []*entity.ImageRecord{}, nil
	}

	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.String())
	}

	sql, args, err := r.Builder.
		Select(imageRecordColumns...).
		From(imageRecordsTable).
		Where(squirrel.Eq{idColumn: rawIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageRecordRepo - FindByIDs - r.Builder.ToSql: %w", err)
	}

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageRecordRepo - FindByIDs - r.Pool.Query: %w: %w", errs.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	records := make([]*entity.ImageRecord, 0, len(ids))
	for rows.Next() {
		var row imageRecordRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("ImageRecordRepo - FindByIDs - rows.Scan: %w: %w", errs.ErrStoreUnavailable, err)
		}

		record, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("ImageRecordRepo - FindByIDs - row.toEntity: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ImageRecordRepo - FindByIDs - rows.Err: %w: %w", errs.ErrStoreUnavailable, err)
	}

	return records, nil
}

// Update loads the record, applies transform and writes the result only if
// updated_at still holds the loaded value. A lost race reloads and retries;
// after _maxUpdateAttempts it fails with errs.ErrUpdateConflict.
func (r *ImageRecordRepo) Update(
	ctx context.Context,
	id entity.ImageID,
	transform func(entity.ImageRecord) entity.ImageRecord,
) error {
	for attempt := 0; attempt < _maxUpdateAttempts; attempt++ {
		current, err := r.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("ImageRecordRepo - Update - r.FindByID: %w", err)
		}
		// absent, or deleted since the previous attempt
		if current == nil {
			return nil
		}

		next := transform(*current)
		next.ID = current.ID
		next.ObjectKey = current.ObjectKey
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = advance(current.UpdatedAt, r.now())

		if err := checkEnums(&next); err != nil {
			return fmt.Errorf("ImageRecordRepo - Update: %w", err)
		}

		applied, err := r.compareAndSet(ctx, &next, current.UpdatedAt)
		if err != nil {
			return fmt.Errorf("ImageRecordRepo - Update - r.compareAndSet: %w", err)
		}
		if applied {
			return nil
		}
	}

	return fmt.Errorf("ImageRecordRepo - Update - id=%s: %w", id, errs.ErrUpdateConflict)
}

func (r *ImageRecordRepo) compareAndSet(ctx context.Context, next *entity.ImageRecord, expectedUpdatedAt time.Time) (bool, error) {
	sql, args, err := r.Builder.
		Update(imageRecordsTable).
		Set(statusColumn, next.Status.String()).
		Set(contentTypeColumn, next.ContentType.String()).
		Set(fileNameColumn, next.FileName).
		Set(sizeBytesColumn, next.SizeBytes).
		Set(updatedAtColumn, next.UpdatedAt).
		Where(squirrel.Eq{idColumn: next.ID.String()}).
		Where(squirrel.Eq{updatedAtColumn: expectedUpdatedAt}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("ImageRecordRepo - compareAndSet - r.Builder.ToSql: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("ImageRecordRepo - compareAndSet - r.Pool.Exec: %w: %w", errs.ErrStoreUnavailable, err)
	}

	return tag.RowsAffected() == 1, nil
}

// advance returns now truncated to the column precision, forced strictly past prev.
func advance(prev, now time.Time) time.Time {
	next := now.UTC().Truncate(time.Microsecond)
	if !next.After(prev) {
		next = prev.UTC().Add(time.Microsecond)
	}

	return next
}
