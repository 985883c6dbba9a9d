package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrorly/internal/domain/payment"
	vo "mirrorly/internal/domain/payment/valueobjects"
	"mirrorly/internal/domain/subscription"
)

func createTestPayment(t *testing.T, orderID, userID string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(orderID, userID, vo.NewMoney(7500000, "IDR"), subscription.TierStarter)
	require.NoError(t, err)
	return p
}

func TestPaymentRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("creates payment and assigns id", func(t *testing.T) {
		p := createTestPayment(t, "MIRR-user123-1754049600", "user123")

		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID())
	})

	t.Run("duplicate order id fails", func(t *testing.T) {
		dup := createTestPayment(t, "MIRR-user123-1754049600", "user123")
		assert.Error(t, repo.Create(ctx, dup))
	})
}

func TestPaymentRepository_GetByOrderID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := createTestPayment(t, "MIRR-user123-1754049600", "user123")
	require.NoError(t, repo.Create(ctx, p))

	t.Run("finds existing record", func(t *testing.T) {
		found, err := repo.GetByOrderID(ctx, "MIRR-user123-1754049600")
		require.NoError(t, err)

		assert.Equal(t, p.OrderID(), found.OrderID())
		assert.Equal(t, p.UserID(), found.UserID())
		assert.True(t, p.Amount().Equals(found.Amount()))
		assert.Equal(t, vo.PaymentStatusPending, found.Status())
	})

	t.Run("missing record returns sentinel", func(t *testing.T) {
		_, err := repo.GetByOrderID(ctx, "MIRR-nobody-1")
		assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
	})
}

func TestPaymentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := createTestPayment(t, "MIRR-user123-1754049600", "user123")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.MarkSuccess())
	p.SetTransactionID("txn-42")
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByOrderID(ctx, "MIRR-user123-1754049600")
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusSuccess, found.Status())
	assert.NotNil(t, found.PaidAt())
	require.NotNil(t, found.TransactionID())
	assert.Equal(t, "txn-42", *found.TransactionID())
}
