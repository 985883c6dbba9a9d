package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mirrorly/internal/domain/payment/valueobjects"
	"mirrorly/internal/domain/subscription"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment("MIRR-user123-1754049600", "user123", vo.NewMoney(7500000, "IDR"), subscription.TierStarter)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p := newTestPayment(t)

		assert.Equal(t, vo.PaymentStatusPending, p.Status())
		assert.Nil(t, p.PaidAt())
		assert.Nil(t, p.TransactionID())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := NewPayment("", "user123", vo.NewMoney(7500000, "IDR"), subscription.TierStarter)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment("MIRR-user123-1", "user123", vo.NewMoney(0, "IDR"), subscription.TierStarter)
		assert.Error(t, err)
	})

	t.Run("rejects invalid tier", func(t *testing.T) {
		_, err := NewPayment("MIRR-user123-1", "user123", vo.NewMoney(7500000, "IDR"), subscription.Tier("platinum"))
		assert.Error(t, err)
	})
}

func TestPayment_MarkSuccess(t *testing.T) {
	t.Run("settles a pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.MarkSuccess())
		assert.Equal(t, vo.PaymentStatusSuccess, p.Status())
		assert.NotNil(t, p.PaidAt())
	})

	t.Run("re-marking success is a no-op", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkSuccess())
		firstPaidAt := p.PaidAt()

		require.NoError(t, p.MarkSuccess())
		assert.Equal(t, firstPaidAt, p.PaidAt())
	})

	t.Run("settles a challenged payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkChallenge("challenge"))

		require.NoError(t, p.MarkSuccess())
		assert.Equal(t, vo.PaymentStatusSuccess, p.Status())
	})

	t.Run("rejects settling a failed payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkFailed())

		assert.Error(t, p.MarkSuccess())
	})
}

func TestPayment_MarkFailed(t *testing.T) {
	t.Run("fails a pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.MarkFailed())
		assert.Equal(t, vo.PaymentStatusFailed, p.Status())
	})

	t.Run("re-marking failed is a no-op", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkFailed())
		require.NoError(t, p.MarkFailed())
	})

	t.Run("rejects failing a settled payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkSuccess())

		assert.Error(t, p.MarkFailed())
	})
}

func TestPayment_MarkChallenge(t *testing.T) {
	t.Run("records fraud status", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.MarkChallenge("challenge"))
		assert.Equal(t, vo.PaymentStatusChallenge, p.Status())
		require.NotNil(t, p.FraudStatus())
		assert.Equal(t, "challenge", *p.FraudStatus())
	})

	t.Run("rejects challenging a final payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkSuccess())

		assert.Error(t, p.MarkChallenge("challenge"))
	})
}

func TestPayment_MarkPending(t *testing.T) {
	t.Run("rejects reverting a final payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.MarkSuccess())

		assert.Error(t, p.MarkPending())
	})
}

func TestPayment_SetTransactionID(t *testing.T) {
	p := newTestPayment(t)

	p.SetTransactionID("txn-998877")
	require.NotNil(t, p.TransactionID())
	assert.Equal(t, "txn-998877", *p.TransactionID())

	p.SetTransactionID("")
	assert.NotNil(t, p.TransactionID())
}
