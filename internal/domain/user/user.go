// Package user provides the user aggregate for the billing core. Users
// are identified by their external account id, which is a string and
// may contain arbitrary characters including the order-id delimiter.
package user

import (
	"fmt"
	"time"

	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/shared/biztime"
)

// User holds the billing-relevant slice of a user account: its current
// tier and when that tier expires. Tier and expiry are mutated only by
// the payment notification pipeline.
type User struct {
	id            string
	tier          subscription.Tier
	tierExpiresAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewUser creates a user on the free tier.
func NewUser(id string) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	return &User{
		id:        id,
		tier:      subscription.TierFree,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ChangeTier moves the user to a new tier with the given expiry.
func (u *User) ChangeTier(tier subscription.Tier, expiresAt time.Time) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid tier: %s", tier)
	}

	u.tier = tier
	u.tierExpiresAt = &expiresAt
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Tier() subscription.Tier {
	return u.tier
}

func (u *User) TierExpiresAt() *time.Time {
	return u.tierExpiresAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// ReconstructUser creates a User instance from persistence.
func ReconstructUser(
	id string,
	tier subscription.Tier,
	tierExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		tier:          tier,
		tierExpiresAt: tierExpiresAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
