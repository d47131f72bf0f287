package entity

import "fmt"

// ContentType is one of the canonical image MIME types accepted for ingestion.
type ContentType string

const (
	ContentTypeJPEG ContentType = "image/jpeg"
	ContentTypePNG  ContentType = "image/png"
	ContentTypeWebP ContentType = "image/webp"
	ContentTypeAVIF ContentType = "image/avif"
)

var supportedContentTypes = []ContentType{
	ContentTypeJPEG,
	ContentTypePNG,
	ContentTypeWebP,
	ContentTypeAVIF,
}

func (c ContentType) String() string {
	return string(c)
}

func (c ContentType) IsValid() bool {
	for _, candidate := range supportedContentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContentType matches value exactly against the allowlist: no case
// folding, no wildcards, no parameters.
func ParseContentType(value string) (ContentType, error) {
	for _, candidate := range supportedContentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unknown image content type %q", value)
}

// SupportedContentTypes returns a copy of the allowlist.
func SupportedContentTypes() []ContentType {
	out := make([]ContentType, len(supportedContentTypes))
	copy(out, supportedContentTypes)
	return out
}
