package subscription

import (
	vo "mirrorly/internal/domain/mirror/valueobjects"
)

// UnlimitedPathSentinel is the path limit used for tiers without a real
// cap. It is a sentinel large value so the admission loop never treats
// capacity as the binding constraint for those tiers.
const UnlimitedPathSentinel = 9999

// TierPolicy defines the admission rules for one tier: how many mirror
// paths may run concurrently and which platforms they may read from and
// write to.
type TierPolicy struct {
	PathLimit             int
	PermittedSources      []vo.Platform
	PermittedDestinations []vo.Platform
}

// AllowsSource reports whether the tier permits paths reading from p.
func (p TierPolicy) AllowsSource(platform vo.Platform) bool {
	for _, s := range p.PermittedSources {
		if s == platform {
			return true
		}
	}
	return false
}

// AllowsDestination reports whether the tier permits paths writing to p.
func (p TierPolicy) AllowsDestination(platform vo.Platform) bool {
	for _, d := range p.PermittedDestinations {
		if d == platform {
			return true
		}
	}
	return false
}

// PolicyTable is the single source of truth mapping tiers to policies.
// It is static deploy-time configuration; Version identifies the
// deployed revision so admission decisions can be correlated with the
// policy that produced them.
type PolicyTable struct {
	Version  string
	policies map[Tier]TierPolicy
}

// NewPolicyTable creates a policy table from a tier-to-policy map.
func NewPolicyTable(version string, policies map[Tier]TierPolicy) PolicyTable {
	copied := make(map[Tier]TierPolicy, len(policies))
	for t, p := range policies {
		copied[t] = p
	}
	return PolicyTable{Version: version, policies: copied}
}

// ForTier returns the policy for the given tier.
func (t PolicyTable) ForTier(tier Tier) (TierPolicy, error) {
	p, ok := t.policies[tier]
	if !ok {
		return TierPolicy{}, ErrUnknownTier
	}
	return p, nil
}

// DefaultPolicyTable returns the current production policy table.
// Cross-platform mirroring (Discord sources) starts at the pro tier;
// all destinations are Telegram.
func DefaultPolicyTable() PolicyTable {
	return NewPolicyTable("2025-08", map[Tier]TierPolicy{
		TierFree: {
			PathLimit:             1,
			PermittedSources:      []vo.Platform{vo.PlatformTelegram},
			PermittedDestinations: []vo.Platform{vo.PlatformTelegram},
		},
		TierStarter: {
			PathLimit:             2,
			PermittedSources:      []vo.Platform{vo.PlatformTelegram},
			PermittedDestinations: []vo.Platform{vo.PlatformTelegram},
		},
		TierPro: {
			PathLimit:             5,
			PermittedSources:      []vo.Platform{vo.PlatformDiscord, vo.PlatformTelegram},
			PermittedDestinations: []vo.Platform{vo.PlatformTelegram},
		},
		TierElite: {
			PathLimit:             UnlimitedPathSentinel,
			PermittedSources:      []vo.Platform{vo.PlatformDiscord, vo.PlatformTelegram},
			PermittedDestinations: []vo.Platform{vo.PlatformTelegram},
		},
	})
}
