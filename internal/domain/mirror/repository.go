package mirror

import (
	"context"

	vo "mirrorly/internal/domain/mirror/valueobjects"
)

// AdmissionUpdate is one (status, active) pair the reconciler persists
// for a mirror path.
type AdmissionUpdate struct {
	ID     uint
	Active bool
	Status vo.MirrorStatus
}

// Repository defines persistence operations for mirror configs.
type Repository interface {
	Create(ctx context.Context, config *MirrorConfig) error

	// ListByUser returns all of a user's mirror configs ordered by
	// creation time ascending. The ordering is the reconciler's
	// admission priority and must be stable.
	ListByUser(ctx context.Context, userID string) ([]*MirrorConfig, error)

	// BatchUpdateAdmission persists the admission decisions for a
	// reconciliation run. Callers are expected to invoke it inside a
	// transaction so partial application is never observable.
	BatchUpdateAdmission(ctx context.Context, updates []AdmissionUpdate) error
}
