package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/domain/user"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := user.NewUser("tg-8812-44")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.GetByID(ctx, "tg-8812-44")
	require.NoError(t, err)
	assert.Equal(t, "tg-8812-44", found.ID())
	assert.Equal(t, subscription.TierFree, found.Tier())
	assert.Nil(t, found.TierExpiresAt())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := user.NewUser("user123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	expiresAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, u.ChangeTier(subscription.TierPro, expiresAt))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, subscription.TierPro, found.Tier())
	require.NotNil(t, found.TierExpiresAt())
	assert.True(t, found.TierExpiresAt().Equal(expiresAt))
}
