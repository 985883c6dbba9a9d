// Package payment provides domain models for payment history records
// and the composite order identifier codec.
package payment

import (
	"fmt"
	"time"

	vo "mirrorly/internal/domain/payment/valueobjects"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/shared/biztime"
)

// Payment is one payment history record. It is created when a
// transaction is initiated and mutated only by the gateway notification
// pipeline.
type Payment struct {
	id      uint
	orderID string
	userID  string
	amount  vo.Money
	tier    subscription.Tier
	status  vo.PaymentStatus

	// Gateway echoes kept for audit.
	transactionID *string
	fraudStatus   *string

	paidAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewPayment creates a pending payment record for an initiated
// transaction.
func NewPayment(orderID, userID string, amount vo.Money, tier subscription.Tier) (*Payment, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}

	now := biztime.NowUTC()
	return &Payment{
		orderID:   orderID,
		userID:    userID,
		amount:    amount,
		tier:      tier,
		status:    vo.PaymentStatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// MarkPending records a gateway pending notification.
func (p *Payment) MarkPending() error {
	if p.status.IsFinal() {
		return fmt.Errorf("cannot mark payment as pending with final status %s", p.status)
	}
	p.status = vo.PaymentStatusPending
	p.updatedAt = biztime.NowUTC()
	return nil
}

// MarkChallenge records a capture held for fraud review. A challenge is
// not final; the review resolves it to success or failed later.
func (p *Payment) MarkChallenge(fraudStatus string) error {
	if p.status.IsFinal() {
		return fmt.Errorf("cannot mark payment as challenge with final status %s", p.status)
	}
	p.status = vo.PaymentStatusChallenge
	p.fraudStatus = &fraudStatus
	p.updatedAt = biztime.NowUTC()
	return nil
}

// MarkSuccess records a settled transaction. Re-marking an already
// successful payment is a no-op so gateway retries stay idempotent.
func (p *Payment) MarkSuccess() error {
	if p.status == vo.PaymentStatusSuccess {
		return nil
	}
	if p.status == vo.PaymentStatusFailed {
		return fmt.Errorf("cannot mark payment as success with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusSuccess
	p.paidAt = &now
	p.updatedAt = now
	return nil
}

// SetTransactionID records the gateway's transaction reference.
func (p *Payment) SetTransactionID(transactionID string) {
	if transactionID == "" {
		return
	}
	p.transactionID = &transactionID
	p.updatedAt = biztime.NowUTC()
}

// MarkFailed records a cancelled, denied, or expired transaction.
func (p *Payment) MarkFailed() error {
	if p.status == vo.PaymentStatusFailed {
		return nil
	}
	if p.status == vo.PaymentStatusSuccess {
		return fmt.Errorf("cannot mark payment as failed with status %s", p.status)
	}

	p.status = vo.PaymentStatusFailed
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) OrderID() string {
	return p.orderID
}

func (p *Payment) UserID() string {
	return p.userID
}

func (p *Payment) Amount() vo.Money {
	return p.amount
}

func (p *Payment) Tier() subscription.Tier {
	return p.tier
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) FraudStatus() *string {
	return p.fraudStatus
}

func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the payment ID after persistence (used by repository after Create)
func (p *Payment) SetID(id uint) {
	p.id = id
}

// ReconstructPayment creates a Payment instance from persistence.
func ReconstructPayment(
	id uint,
	orderID, userID string,
	amount vo.Money,
	tier subscription.Tier,
	status vo.PaymentStatus,
	transactionID, fraudStatus *string,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		orderID:       orderID,
		userID:        userID,
		amount:        amount,
		tier:          tier,
		status:        status,
		transactionID: transactionID,
		fraudStatus:   fraudStatus,
		paidAt:        paidAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
