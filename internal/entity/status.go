package entity

import "fmt"

// ImageStatus is the lifecycle state of an ImageRecord.
type ImageStatus string

const (
	ImageStatusPending ImageStatus = "Pending"
	ImageStatusReady   ImageStatus = "Ready"
	ImageStatusFailed  ImageStatus = "Failed"
)

var validImageStatuses = []ImageStatus{
	ImageStatusPending,
	ImageStatusReady,
	ImageStatusFailed,
}

func (s ImageStatus) String() string {
	return string(s)
}

func (s ImageStatus) IsValid() bool {
	for _, candidate := range validImageStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s ImageStatus) IsTerminal() bool {
	return s == ImageStatusReady || s == ImageStatusFailed
}

// CanTransitionTo reports whether s -> next is a legal lifecycle step.
// Only Pending -> Ready and Pending -> Failed are allowed.
func (s ImageStatus) CanTransitionTo(next ImageStatus) bool {
	return s == ImageStatusPending && next.IsTerminal()
}

// ParseImageStatus maps a stored value onto ImageStatus. Unknown values are an error.
func ParseImageStatus(value string) (ImageStatus, error) {
	for _, candidate := range validImageStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unknown image status %q", value)
}
