package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mirrorly/internal/domain/mirror/valueobjects"
)

func TestDefaultPolicyTable(t *testing.T) {
	table := DefaultPolicyTable()

	t.Run("free tier", func(t *testing.T) {
		p, err := table.ForTier(TierFree)
		require.NoError(t, err)

		assert.Equal(t, 1, p.PathLimit)
		assert.True(t, p.AllowsSource(vo.PlatformTelegram))
		assert.False(t, p.AllowsSource(vo.PlatformDiscord))
	})

	t.Run("starter tier", func(t *testing.T) {
		p, err := table.ForTier(TierStarter)
		require.NoError(t, err)

		assert.Equal(t, 2, p.PathLimit)
		assert.False(t, p.AllowsSource(vo.PlatformDiscord))
	})

	t.Run("pro tier allows discord sources", func(t *testing.T) {
		p, err := table.ForTier(TierPro)
		require.NoError(t, err)

		assert.Equal(t, 5, p.PathLimit)
		assert.True(t, p.AllowsSource(vo.PlatformDiscord))
		assert.True(t, p.AllowsDestination(vo.PlatformTelegram))
		assert.False(t, p.AllowsDestination(vo.PlatformDiscord))
	})

	t.Run("elite tier is effectively unlimited", func(t *testing.T) {
		p, err := table.ForTier(TierElite)
		require.NoError(t, err)

		assert.Equal(t, UnlimitedPathSentinel, p.PathLimit)
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := table.ForTier(Tier("platinum"))
		assert.ErrorIs(t, err, ErrUnknownTier)
	})

	t.Run("carries a version", func(t *testing.T) {
		assert.NotEmpty(t, table.Version)
	})
}
