package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrImageNotReady  = errors.New("image not ready")

	// Input faults
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidFileName        = errors.New("invalid file name")

	// Record store
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDecodeFailed     = errors.New("decode failed")
	ErrUpdateConflict   = errors.New("update conflict")
	ErrInvalidRecord    = errors.New("invalid record")

	// Object storage
	ErrPresignFailed  = errors.New("presign failed")
	ErrMetadataFailed = errors.New("metadata failed")
	ErrDeleteFailed   = errors.New("delete failed")
)

// IsInputFault reports whether err was caused by the caller's input.
func IsInputFault(err error) bool {
	return errors.Is(err, ErrUnsupportedContentType) || errors.Is(err, ErrInvalidFileName)
}
