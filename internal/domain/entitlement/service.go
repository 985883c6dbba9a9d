// Package entitlement implements the admission algorithm deciding
// which of a user's mirror paths may run under a tier policy.
package entitlement

import (
	"mirrorly/internal/domain/mirror"
	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/domain/subscription"
)

// Decision is the computed admission outcome for one mirror path.
type Decision struct {
	ConfigID uint
	Active   bool
	Status   vo.MirrorStatus
}

// Reconcile recomputes admission for a user's mirror paths under the
// given tier policy. Configs must be ordered oldest-first: creation
// time is the fixed admission priority, so the earliest-created
// eligible paths fill the tier's path limit.
//
// The computation is a pure function of (policy, ordered configs).
// It always recomputes from scratch rather than patching prior state,
// which makes reruns idempotent and demotes paths that became
// ineligible after a downgrade even if they were previously admitted.
func Reconcile(policy subscription.TierPolicy, configs []*mirror.MirrorConfig) []Decision {
	decisions := make([]Decision, 0, len(configs))

	admitted := 0
	for _, cfg := range configs {
		d := Decision{ConfigID: cfg.ID()}

		switch {
		case !isEligible(policy, cfg):
			d.Active = false
			d.Status = vo.MirrorStatusPlanRestriction
		case admitted < policy.PathLimit:
			d.Active = true
			d.Status = vo.MirrorStatusActive
			admitted++
		default:
			d.Active = false
			d.Status = vo.MirrorStatusPathLimitReached
		}

		decisions = append(decisions, d)
	}

	return decisions
}

// isEligible checks a path's platforms against the policy, independent
// of capacity. Same-chat paths skip the destination check: only a
// cross-chat hop has an inferred destination to validate.
func isEligible(policy subscription.TierPolicy, cfg *mirror.MirrorConfig) bool {
	if !policy.AllowsSource(cfg.SourcePlatform()) {
		return false
	}
	if cfg.IsCrossChat() && !policy.AllowsDestination(cfg.InferredDestination()) {
		return false
	}
	return true
}

// Apply writes a decision back onto its aggregate.
func Apply(cfg *mirror.MirrorConfig, d Decision) {
	switch d.Status {
	case vo.MirrorStatusActive:
		cfg.Admit()
	case vo.MirrorStatusPlanRestriction:
		cfg.RestrictByPlan()
	case vo.MirrorStatusPathLimitReached:
		cfg.RestrictByLimit()
	}
}
