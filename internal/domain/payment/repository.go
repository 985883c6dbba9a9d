package payment

import "context"

// Repository defines persistence operations for payment records.
type Repository interface {
	Create(ctx context.Context, p *Payment) error

	// GetByOrderID returns the payment for an order identifier, or
	// ErrPaymentNotFound when no record exists.
	GetByOrderID(ctx context.Context, orderID string) (*Payment, error)

	Update(ctx context.Context, p *Payment) error
}
