package mappers

import (
	"fmt"

	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/domain/user"
	"mirrorly/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:            u.ID(),
		Tier:          u.Tier().String(),
		TierExpiresAt: u.TierExpiresAt(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	tier, err := subscription.NewTier(model.Tier)
	if err != nil {
		return nil, fmt.Errorf("invalid tier: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		tier,
		model.TierExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
