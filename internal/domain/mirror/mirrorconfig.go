// Package mirror provides domain models for mirror paths: configured
// relays from one source chat to one destination chat.
package mirror

import (
	"fmt"
	"time"

	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/shared/biztime"
)

// MirrorConfig represents one mirror path owned by a user. Admission
// state (active + status) is mutated exclusively by the entitlement
// reconciler; the mirroring worker only reads it.
type MirrorConfig struct {
	id             uint
	userID         string
	sourcePlatform vo.Platform
	sourceChatID   string

	// destinationChatID is nil or equal to sourceChatID for
	// same-chat paths; anything else is a cross-chat hop whose
	// destination platform is always Telegram.
	destinationChatID *string

	active    bool
	status    vo.MirrorStatus
	createdAt time.Time
	updatedAt time.Time
}

// NewMirrorConfig creates a new mirror path. New paths start inactive;
// the reconciler decides admission on the owner's next tier change.
func NewMirrorConfig(userID string, sourcePlatform vo.Platform, sourceChatID string, destinationChatID *string) (*MirrorConfig, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !sourcePlatform.IsValid() {
		return nil, fmt.Errorf("invalid source platform: %s", sourcePlatform)
	}
	if sourceChatID == "" {
		return nil, fmt.Errorf("source chat ID is required")
	}

	now := biztime.NowUTC()
	return &MirrorConfig{
		userID:            userID,
		sourcePlatform:    sourcePlatform,
		sourceChatID:      sourceChatID,
		destinationChatID: destinationChatID,
		active:            false,
		// Not yet admitted; the next reconciliation assigns the real status.
		status:    vo.MirrorStatusPathLimitReached,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// IsCrossChat reports whether the path hops to a different chat than it
// reads from. Same-chat paths carry no destination chat id (or repeat
// the source chat id).
func (m *MirrorConfig) IsCrossChat() bool {
	return m.destinationChatID != nil && *m.destinationChatID != "" && *m.destinationChatID != m.sourceChatID
}

// InferredDestination returns the platform the path writes to.
// Cross-chat hops always land on Telegram; same-chat paths stay on
// their source platform.
func (m *MirrorConfig) InferredDestination() vo.Platform {
	if m.IsCrossChat() {
		return vo.PlatformTelegram
	}
	return m.sourcePlatform
}

// Admit marks the path as admitted to run.
func (m *MirrorConfig) Admit() {
	m.active = true
	m.status = vo.MirrorStatusActive
	m.updatedAt = biztime.NowUTC()
}

// RestrictByPlan marks the path as blocked by tier permissions.
func (m *MirrorConfig) RestrictByPlan() {
	m.active = false
	m.status = vo.MirrorStatusPlanRestriction
	m.updatedAt = biztime.NowUTC()
}

// RestrictByLimit marks the path as eligible but over the tier's path
// limit.
func (m *MirrorConfig) RestrictByLimit() {
	m.active = false
	m.status = vo.MirrorStatusPathLimitReached
	m.updatedAt = biztime.NowUTC()
}

func (m *MirrorConfig) ID() uint {
	return m.id
}

func (m *MirrorConfig) UserID() string {
	return m.userID
}

func (m *MirrorConfig) SourcePlatform() vo.Platform {
	return m.sourcePlatform
}

func (m *MirrorConfig) SourceChatID() string {
	return m.sourceChatID
}

func (m *MirrorConfig) DestinationChatID() *string {
	return m.destinationChatID
}

func (m *MirrorConfig) IsActive() bool {
	return m.active
}

func (m *MirrorConfig) Status() vo.MirrorStatus {
	return m.status
}

func (m *MirrorConfig) CreatedAt() time.Time {
	return m.createdAt
}

func (m *MirrorConfig) UpdatedAt() time.Time {
	return m.updatedAt
}

// SetID sets the config ID after persistence (used by repository after Create)
func (m *MirrorConfig) SetID(id uint) {
	m.id = id
}

// ReconstructMirrorConfig creates a MirrorConfig instance from persistence.
func ReconstructMirrorConfig(
	id uint,
	userID string,
	sourcePlatform vo.Platform,
	sourceChatID string,
	destinationChatID *string,
	active bool,
	status vo.MirrorStatus,
	createdAt, updatedAt time.Time,
) *MirrorConfig {
	return &MirrorConfig{
		id:                id,
		userID:            userID,
		sourcePlatform:    sourcePlatform,
		sourceChatID:      sourceChatID,
		destinationChatID: destinationChatID,
		active:            active,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}
