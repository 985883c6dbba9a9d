package mappers

import (
	"fmt"

	"mirrorly/internal/domain/mirror"
	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/infrastructure/persistence/models"
)

func MirrorConfigToModel(m *mirror.MirrorConfig) *models.MirrorConfigModel {
	return &models.MirrorConfigModel{
		ID:                m.ID(),
		UserID:            m.UserID(),
		SourcePlatform:    m.SourcePlatform().String(),
		SourceChatID:      m.SourceChatID(),
		DestinationChatID: m.DestinationChatID(),
		Active:            m.IsActive(),
		Status:            m.Status().String(),
		CreatedAt:         m.CreatedAt(),
		UpdatedAt:         m.UpdatedAt(),
	}
}

func MirrorConfigToDomain(model *models.MirrorConfigModel) (*mirror.MirrorConfig, error) {
	platform, err := vo.NewPlatform(model.SourcePlatform)
	if err != nil {
		return nil, fmt.Errorf("invalid source platform: %w", err)
	}

	status, err := vo.NewMirrorStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror status: %w", err)
	}

	return mirror.ReconstructMirrorConfig(
		model.ID,
		model.UserID,
		platform,
		model.SourceChatID,
		model.DestinationChatID,
		model.Active,
		status,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
