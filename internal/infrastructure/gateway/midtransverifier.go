// Package gateway implements authentication of inbound payment gateway
// notifications. The signature scheme (SHA-512 over order id, status
// code, gross amount, and server key) is dictated by the gateway and
// treated as a fixed external protocol.
package gateway

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"mirrorly/internal/shared/config"
	apperrors "mirrorly/internal/shared/errors"
	"mirrorly/internal/shared/logger"
)

// MidtransVerifier authenticates notifications using the deployment's
// gateway credentials. Both checks fail closed: an unset credential
// rejects everything.
type MidtransVerifier struct {
	serverKey  string
	pathSecret string
	logger     logger.Interface
}

func NewMidtransVerifier(cfg *config.GatewayConfig, log logger.Interface) *MidtransVerifier {
	return &MidtransVerifier{
		serverKey:  cfg.ServerKey,
		pathSecret: cfg.PathSecret,
		logger:     log,
	}
}

// VerifyPathSecret compares the webhook URL's secret segment against
// the configured value in constant time.
func (v *MidtransVerifier) VerifyPathSecret(pathSecret string) error {
	if v.pathSecret == "" ||
		subtle.ConstantTimeCompare([]byte(pathSecret), []byte(v.pathSecret)) != 1 {
		v.logger.Warnw("rejected notification with invalid path secret")
		return apperrors.NewPathSecretMismatchError()
	}
	return nil
}

// VerifySignature recomputes the SHA-512 signature over the fixed
// ordered concatenation {order id, status code, gross amount, server
// key} and compares it byte-for-byte against the supplied value.
func (v *MidtransVerifier) VerifySignature(orderID, statusCode, grossAmount, signature string) error {
	if v.serverKey == "" {
		v.logger.Warnw("rejected notification: no server key configured", "order_id", orderID)
		return apperrors.NewSignatureMismatchError(orderID)
	}

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + v.serverKey))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) != 1 {
		v.logger.Warnw("rejected notification with invalid signature", "order_id", orderID)
		return apperrors.NewSignatureMismatchError(orderID)
	}
	return nil
}
