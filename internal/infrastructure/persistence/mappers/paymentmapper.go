package mappers

import (
	"fmt"

	"mirrorly/internal/domain/payment"
	vo "mirrorly/internal/domain/payment/valueobjects"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            p.ID(),
		OrderID:       p.OrderID(),
		UserID:        p.UserID(),
		Amount:        p.Amount().AmountInCents(),
		Currency:      p.Amount().Currency(),
		Tier:          p.Tier().String(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		FraudStatus:   p.FraudStatus(),
		PaidAt:        p.PaidAt(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	tier, err := subscription.NewTier(model.Tier)
	if err != nil {
		return nil, fmt.Errorf("invalid tier: %w", err)
	}

	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	amount := vo.NewMoney(model.Amount, model.Currency)

	return payment.ReconstructPayment(
		model.ID,
		model.OrderID,
		model.UserID,
		amount,
		tier,
		status,
		model.TransactionID,
		model.FraudStatus,
		model.PaidAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
