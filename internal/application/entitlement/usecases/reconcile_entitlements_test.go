package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/infrastructure/persistence/models"
	"mirrorly/internal/infrastructure/repository"
	"mirrorly/internal/shared/db"
	"mirrorly/internal/shared/logger"
)

func setupReconcileTest(t *testing.T) (*ReconcileEntitlementsUseCase, *repository.MirrorConfigRepository, *gorm.DB) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.MirrorConfigModel{}))

	configRepo := repository.NewMirrorConfigRepository(database)
	uc := NewReconcileEntitlementsUseCase(
		configRepo,
		subscription.DefaultPolicyTable(),
		db.NewTransactionManager(database),
		logger.NewLogger(),
	)
	return uc, configRepo, database
}

func seedRow(t *testing.T, database *gorm.DB, userID, sourcePlatform, sourceChat string, destChat *string, active bool, status string, createdAt time.Time) {
	t.Helper()
	model := models.MirrorConfigModel{
		UserID:            userID,
		SourcePlatform:    sourcePlatform,
		SourceChatID:      sourceChat,
		DestinationChatID: destChat,
		Active:            active,
		Status:            status,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
	require.NoError(t, database.Create(&model).Error)
}

func strPtr(s string) *string {
	return &s
}

func TestReconcileEntitlements_Execute(t *testing.T) {
	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("downgrade demotes previously admitted paths", func(t *testing.T) {
		uc, configRepo, database := setupReconcileTest(t)
		ctx := context.Background()

		// State left behind by a pro subscription: everything active.
		seedRow(t, database, "user123", "discord", "guild-1", strPtr("tg-1"), true, "active", base)
		seedRow(t, database, "user123", "telegram", "chat-a", nil, true, "active", base.Add(time.Minute))
		seedRow(t, database, "user123", "telegram", "chat-b", nil, true, "active", base.Add(2*time.Minute))
		seedRow(t, database, "user123", "telegram", "chat-c", nil, true, "active", base.Add(3*time.Minute))

		require.NoError(t, uc.Execute(ctx, "user123", subscription.TierStarter))

		configs, err := configRepo.ListByUser(ctx, "user123")
		require.NoError(t, err)
		require.Len(t, configs, 4)

		assert.Equal(t, vo.MirrorStatusPlanRestriction, configs[0].Status())
		assert.Equal(t, vo.MirrorStatusActive, configs[1].Status())
		assert.Equal(t, vo.MirrorStatusActive, configs[2].Status())
		assert.Equal(t, vo.MirrorStatusPathLimitReached, configs[3].Status())
	})

	t.Run("no-op for user without configs", func(t *testing.T) {
		uc, _, _ := setupReconcileTest(t)
		assert.NoError(t, uc.Execute(context.Background(), "nobody", subscription.TierPro))
	})

	t.Run("unknown tier fails before touching the store", func(t *testing.T) {
		uc, configRepo, database := setupReconcileTest(t)
		ctx := context.Background()

		seedRow(t, database, "user123", "telegram", "chat-a", nil, true, "active", base)

		require.Error(t, uc.Execute(ctx, "user123", subscription.Tier("platinum")))

		configs, err := configRepo.ListByUser(ctx, "user123")
		require.NoError(t, err)
		assert.Equal(t, vo.MirrorStatusActive, configs[0].Status())
	})

	t.Run("does not touch other users", func(t *testing.T) {
		uc, configRepo, database := setupReconcileTest(t)
		ctx := context.Background()

		seedRow(t, database, "user123", "telegram", "chat-a", nil, false, "path_limit_reached", base)
		seedRow(t, database, "bystander", "telegram", "chat-z", nil, false, "path_limit_reached", base)

		require.NoError(t, uc.Execute(ctx, "user123", subscription.TierFree))

		mine, err := configRepo.ListByUser(ctx, "user123")
		require.NoError(t, err)
		assert.True(t, mine[0].IsActive())

		theirs, err := configRepo.ListByUser(ctx, "bystander")
		require.NoError(t, err)
		assert.False(t, theirs[0].IsActive())
	})
}
