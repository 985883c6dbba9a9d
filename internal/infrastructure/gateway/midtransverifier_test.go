package gateway

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrorly/internal/shared/config"
	apperrors "mirrorly/internal/shared/errors"
	"mirrorly/internal/shared/logger"
)

const (
	testServerKey  = "SB-Mid-server-abc123"
	testPathSecret = "wh-9f2c1"
)

func newTestVerifier() *MidtransVerifier {
	return NewMidtransVerifier(&config.GatewayConfig{
		ServerKey:  testServerKey,
		PathSecret: testPathSecret,
	}, logger.NewLogger())
}

func signNotification(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return hex.EncodeToString(sum[:])
}

func TestMidtransVerifier_VerifyPathSecret(t *testing.T) {
	v := newTestVerifier()

	t.Run("accepts correct secret", func(t *testing.T) {
		assert.NoError(t, v.VerifyPathSecret(testPathSecret))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		err := v.VerifyPathSecret("wrong")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthorizedError(err))
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		assert.Error(t, v.VerifyPathSecret(""))
	})

	t.Run("fails closed when unconfigured", func(t *testing.T) {
		unconfigured := NewMidtransVerifier(&config.GatewayConfig{}, logger.NewLogger())
		assert.Error(t, unconfigured.VerifyPathSecret(""))
		assert.Error(t, unconfigured.VerifyPathSecret("anything"))
	})
}

func TestMidtransVerifier_VerifySignature(t *testing.T) {
	v := newTestVerifier()

	orderID := "MIRR-user123-1754049600"
	statusCode := "200"
	grossAmount := "75000.00"
	signature := signNotification(orderID, statusCode, grossAmount)

	t.Run("accepts valid signature", func(t *testing.T) {
		assert.NoError(t, v.VerifySignature(orderID, statusCode, grossAmount, signature))
	})

	t.Run("accepts uppercase hex", func(t *testing.T) {
		assert.NoError(t, v.VerifySignature(orderID, statusCode, grossAmount, strings.ToUpper(signature)))
	})

	t.Run("rejects tampered signature", func(t *testing.T) {
		tampered := []byte(signature)
		if tampered[0] == 'a' {
			tampered[0] = 'b'
		} else {
			tampered[0] = 'a'
		}

		err := v.VerifySignature(orderID, statusCode, grossAmount, string(tampered))
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("rejects signature over different amount", func(t *testing.T) {
		err := v.VerifySignature(orderID, statusCode, "499000.00", signature)
		assert.Error(t, err)
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.Error(t, v.VerifySignature(orderID, statusCode, grossAmount, ""))
	})

	t.Run("fails closed when server key unset", func(t *testing.T) {
		unconfigured := NewMidtransVerifier(&config.GatewayConfig{PathSecret: testPathSecret}, logger.NewLogger())
		assert.Error(t, unconfigured.VerifySignature(orderID, statusCode, grossAmount, signature))
	})
}
