// Package gateway defines the interface the payment pipeline requires
// from the notification authenticator.
package gateway

// NotificationVerifier authenticates inbound gateway notifications.
// Both checks must pass before any store access happens.
type NotificationVerifier interface {
	// VerifyPathSecret compares the webhook URL's secret segment
	// against the configured value. An absent configured value fails
	// closed.
	VerifyPathSecret(pathSecret string) error

	// VerifySignature recomputes the payload signature over the fixed
	// ordered concatenation {order id, status code, gross amount,
	// server secret} and compares it byte-for-byte against the
	// supplied one.
	VerifySignature(orderID, statusCode, grossAmount, signature string) error
}
