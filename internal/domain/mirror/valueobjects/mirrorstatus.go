package valueobjects

import "fmt"

// MirrorStatus records why a mirror path is or is not admitted.
type MirrorStatus string

const (
	// MirrorStatusActive means the path is admitted and may run.
	MirrorStatusActive MirrorStatus = "active"
	// MirrorStatusPlanRestriction means the path's platforms are not
	// permitted under the owner's tier, regardless of capacity.
	MirrorStatusPlanRestriction MirrorStatus = "plan_restriction"
	// MirrorStatusPathLimitReached means the path is eligible but the
	// tier's path limit was already filled by older paths.
	MirrorStatusPathLimitReached MirrorStatus = "path_limit_reached"
)

// IsValid checks if the mirror status is valid
func (s MirrorStatus) IsValid() bool {
	switch s {
	case MirrorStatusActive, MirrorStatusPlanRestriction, MirrorStatusPathLimitReached:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mirror status
func (s MirrorStatus) String() string {
	return string(s)
}

// NewMirrorStatus creates a new MirrorStatus from a string
func NewMirrorStatus(s string) (MirrorStatus, error) {
	ms := MirrorStatus(s)
	if !ms.IsValid() {
		return "", fmt.Errorf("invalid mirror status: %s", s)
	}
	return ms, nil
}
