package validate

import (
	"fmt"
	"strings"

	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/oklog/ulid/v2"
)

const MaxBatchIDs = 100

// ImageID checks that raw is a canonical ULID.
func ImageID(raw string) (entity.ImageID, error) {
	id, err := ulid.ParseStrict(raw)
	if err != nil {
		return "", fmt.Errorf("invalid image id %q", raw)
	}

	return entity.ImageID(id.String()), nil
}

// ImageIDs parses a comma separated id list, ignoring empty items.
func ImageIDs(raw string) ([]entity.ImageID, error) {
	parts := strings.Split(raw, ",")

	ids := make([]entity.ImageID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := ImageID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("ids is required")
	}
	if len(ids) > MaxBatchIDs {
		return nil, fmt.Errorf("at most %d ids allowed, got %d", MaxBatchIDs, len(ids))
	}

	return ids, nil
}
