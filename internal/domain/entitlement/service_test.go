package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrorly/internal/domain/mirror"
	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/domain/subscription"
)

func strPtr(s string) *string {
	return &s
}

func policyFor(t *testing.T, tier subscription.Tier) subscription.TierPolicy {
	t.Helper()
	p, err := subscription.DefaultPolicyTable().ForTier(tier)
	require.NoError(t, err)
	return p
}

// newConfig builds a config with an explicit id so decisions can be
// matched back to their paths. Order of creation is the slice order.
func newConfig(t *testing.T, id uint, source vo.Platform, sourceChat string, destChat *string) *mirror.MirrorConfig {
	t.Helper()
	cfg, err := mirror.NewMirrorConfig("user123", source, sourceChat, destChat)
	require.NoError(t, err)
	cfg.SetID(id)
	return cfg
}

func TestReconcile_OldestFirstAdmission(t *testing.T) {
	policy := policyFor(t, subscription.TierStarter) // limit 2, telegram only

	configs := []*mirror.MirrorConfig{
		newConfig(t, 1, vo.PlatformTelegram, "chat-a", nil),
		newConfig(t, 2, vo.PlatformTelegram, "chat-b", nil),
		newConfig(t, 3, vo.PlatformTelegram, "chat-c", nil),
	}

	decisions := Reconcile(policy, configs)
	require.Len(t, decisions, 3)

	assert.True(t, decisions[0].Active)
	assert.Equal(t, vo.MirrorStatusActive, decisions[0].Status)
	assert.True(t, decisions[1].Active)
	assert.False(t, decisions[2].Active)
	assert.Equal(t, vo.MirrorStatusPathLimitReached, decisions[2].Status)
}

func TestReconcile_IneligiblePathsNeverActive(t *testing.T) {
	policy := policyFor(t, subscription.TierStarter)

	configs := []*mirror.MirrorConfig{
		newConfig(t, 1, vo.PlatformDiscord, "guild-1", strPtr("tg-1")),
		newConfig(t, 2, vo.PlatformTelegram, "chat-a", nil),
		newConfig(t, 3, vo.PlatformTelegram, "chat-b", nil),
	}

	decisions := Reconcile(policy, configs)
	require.Len(t, decisions, 3)

	// The discord path is blocked by the plan, not counted against the
	// limit; both telegram paths fit.
	assert.Equal(t, vo.MirrorStatusPlanRestriction, decisions[0].Status)
	assert.False(t, decisions[0].Active)
	assert.True(t, decisions[1].Active)
	assert.True(t, decisions[2].Active)
}

func TestReconcile_ActiveCountNeverExceedsLimit(t *testing.T) {
	for _, tier := range []subscription.Tier{
		subscription.TierFree,
		subscription.TierStarter,
		subscription.TierPro,
	} {
		t.Run(tier.String(), func(t *testing.T) {
			policy := policyFor(t, tier)

			configs := make([]*mirror.MirrorConfig, 0, 10)
			for i := uint(1); i <= 10; i++ {
				configs = append(configs, newConfig(t, i, vo.PlatformTelegram, "chat", nil))
			}

			decisions := Reconcile(policy, configs)

			active := 0
			for _, d := range decisions {
				if d.Active {
					active++
				}
			}
			assert.LessOrEqual(t, active, policy.PathLimit)
		})
	}
}

func TestReconcile_EliteAdmitsAll(t *testing.T) {
	policy := policyFor(t, subscription.TierElite)

	configs := make([]*mirror.MirrorConfig, 0, 50)
	for i := uint(1); i <= 50; i++ {
		configs = append(configs, newConfig(t, i, vo.PlatformDiscord, "guild", strPtr("tg")))
	}

	for _, d := range Reconcile(policy, configs) {
		assert.True(t, d.Active)
	}
}

func TestReconcile_DowngradeDemotesAdmittedPaths(t *testing.T) {
	// Five paths admitted under pro; a downgrade to starter must demote
	// the two discord paths to plan restriction and keep only the two
	// oldest telegram paths.
	configs := []*mirror.MirrorConfig{
		newConfig(t, 1, vo.PlatformDiscord, "guild-1", strPtr("tg-1")),
		newConfig(t, 2, vo.PlatformTelegram, "chat-a", nil),
		newConfig(t, 3, vo.PlatformDiscord, "guild-2", strPtr("tg-2")),
		newConfig(t, 4, vo.PlatformTelegram, "chat-b", nil),
		newConfig(t, 5, vo.PlatformTelegram, "chat-c", nil),
	}

	for _, d := range Reconcile(policyFor(t, subscription.TierPro), configs) {
		assert.True(t, d.Active)
	}

	decisions := Reconcile(policyFor(t, subscription.TierStarter), configs)

	assert.Equal(t, vo.MirrorStatusPlanRestriction, decisions[0].Status)
	assert.Equal(t, vo.MirrorStatusActive, decisions[1].Status)
	assert.Equal(t, vo.MirrorStatusPlanRestriction, decisions[2].Status)
	assert.Equal(t, vo.MirrorStatusActive, decisions[3].Status)
	assert.Equal(t, vo.MirrorStatusPathLimitReached, decisions[4].Status)
}

func TestReconcile_Idempotent(t *testing.T) {
	policy := policyFor(t, subscription.TierStarter)

	configs := []*mirror.MirrorConfig{
		newConfig(t, 1, vo.PlatformTelegram, "chat-a", nil),
		newConfig(t, 2, vo.PlatformDiscord, "guild-1", strPtr("tg-1")),
		newConfig(t, 3, vo.PlatformTelegram, "chat-b", nil),
		newConfig(t, 4, vo.PlatformTelegram, "chat-c", nil),
	}

	first := Reconcile(policy, configs)
	for i, d := range first {
		Apply(configs[i], d)
	}
	second := Reconcile(policy, configs)

	assert.Equal(t, first, second)
}

func TestReconcile_NoConfigs(t *testing.T) {
	decisions := Reconcile(policyFor(t, subscription.TierPro), nil)
	assert.Empty(t, decisions)
}

func TestApply(t *testing.T) {
	cfg := newConfig(t, 1, vo.PlatformTelegram, "chat-a", nil)

	Apply(cfg, Decision{ConfigID: 1, Active: true, Status: vo.MirrorStatusActive})
	assert.True(t, cfg.IsActive())
	assert.Equal(t, vo.MirrorStatusActive, cfg.Status())

	Apply(cfg, Decision{ConfigID: 1, Active: false, Status: vo.MirrorStatusPlanRestriction})
	assert.False(t, cfg.IsActive())
	assert.Equal(t, vo.MirrorStatusPlanRestriction, cfg.Status())
}
