package ingest

import (
	"fmt"
	"unicode/utf8"

	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
)

const _maxFileNameLength = 255

func validateContentType(contentType string) (entity.ContentType, error) {
	ct, err := entity.ParseContentType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errs.ErrUnsupportedContentType, contentType)
	}

	return ct, nil
}

// validateFileName counts length in code points.
func validateFileName(fileName string) error {
	if fileName == "" {
		return fmt.Errorf("%w: must not be empty", errs.ErrInvalidFileName)
	}

	if !utf8.ValidString(fileName) {
		return fmt.Errorf("%w: must be valid UTF-8", errs.ErrInvalidFileName)
	}

	if n := utf8.RuneCountInString(fileName); n > _maxFileNameLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", errs.ErrInvalidFileName, n, _maxFileNameLength)
	}

	for _, r := range fileName {
		if r <= 31 {
			return fmt.Errorf("%w: control character %U", errs.ErrInvalidFileName, r)
		}
	}

	return nil
}
