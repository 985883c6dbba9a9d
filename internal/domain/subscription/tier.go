// Package subscription provides domain models for subscription tiers,
// the tier policy table, and price-to-tier resolution.
package subscription

import "fmt"

// Tier represents a subscription tier.
type Tier string

const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
	TierPro     Tier = "pro"
	TierElite   Tier = "elite"
)

// IsValid checks if the tier is valid
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierStarter, TierPro, TierElite:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsPaid checks if the tier is a paid tier
func (t Tier) IsPaid() bool {
	return t.IsValid() && t != TierFree
}

// NewTier creates a new Tier from a string
func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s, must be 'free', 'starter', 'pro', or 'elite'", s)
	}
	return t, nil
}
