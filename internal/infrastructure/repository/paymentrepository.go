package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mirrorly/internal/domain/payment"
	"mirrorly/internal/infrastructure/persistence/mappers"
	"mirrorly/internal/infrastructure/persistence/models"
	"mirrorly/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: database}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.PaymentToModel(p)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*payment.Payment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PaymentModel
	if err := tx.WithContext(ctx).Where("order_id = ?", orderID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by order id: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.PaymentToModel(p)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}
