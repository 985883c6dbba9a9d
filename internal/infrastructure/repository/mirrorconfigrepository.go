package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mirrorly/internal/domain/mirror"
	"mirrorly/internal/infrastructure/persistence/mappers"
	"mirrorly/internal/infrastructure/persistence/models"
	"mirrorly/internal/shared/db"
)

type MirrorConfigRepository struct {
	db *gorm.DB
}

func NewMirrorConfigRepository(database *gorm.DB) *MirrorConfigRepository {
	return &MirrorConfigRepository{db: database}
}

func (r *MirrorConfigRepository) Create(ctx context.Context, config *mirror.MirrorConfig) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.MirrorConfigToModel(config)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create mirror config: %w", err)
	}

	config.SetID(model.ID)
	return nil
}

// ListByUser returns the user's configs in creation order. The id tiebreak
// keeps the order stable when rows share a created_at second.
func (r *MirrorConfigRepository) ListByUser(ctx context.Context, userID string) ([]*mirror.MirrorConfig, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.MirrorConfigModel
	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list mirror configs: %w", err)
	}

	configs := make([]*mirror.MirrorConfig, 0, len(modelList))
	for i := range modelList {
		config, err := mappers.MirrorConfigToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map mirror config %d: %w", modelList[i].ID, err)
		}
		configs = append(configs, config)
	}

	return configs, nil
}

func (r *MirrorConfigRepository) BatchUpdateAdmission(ctx context.Context, updates []mirror.AdmissionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	now := time.Now()

	for _, update := range updates {
		result := tx.WithContext(ctx).
			Model(&models.MirrorConfigModel{}).
			Where("id = ?", update.ID).
			Updates(map[string]interface{}{
				"active":     update.Active,
				"status":     update.Status.String(),
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update admission for config %d: %w", update.ID, result.Error)
		}
	}

	return nil
}
