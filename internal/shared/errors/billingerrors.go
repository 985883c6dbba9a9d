package errors

// Billing-specific error constructors. They map the webhook pipeline's
// failure classes onto the shared AppError taxonomy so handlers can
// translate them to HTTP responses uniformly.

// NewPathSecretMismatchError is returned when the webhook URL's secret
// segment does not match the configured value (or none is configured).
func NewPathSecretMismatchError() *AppError {
	return NewUnauthorizedError("webhook path secret mismatch")
}

// NewSignatureMismatchError is returned when the recomputed payload
// signature does not match the supplied one.
func NewSignatureMismatchError(orderID string) *AppError {
	return NewForbiddenError("notification signature mismatch", "order_id="+orderID)
}

// NewMalformedOrderIDError is returned when an order identifier cannot
// be decoded.
func NewMalformedOrderIDError(orderID string) *AppError {
	return NewValidationError("malformed order identifier", "order_id="+orderID)
}

// NewUnknownAmountError is returned when a gross amount matches no
// price table entry.
func NewUnknownAmountError(amount string) *AppError {
	return NewValidationError("amount does not match any tier price", "gross_amount="+amount)
}

// NewPaymentRecordNotFoundError is returned when no payment history row
// exists for the order identifier. The webhook handler surfaces this as
// a 500 so the gateway retries after the record is created.
func NewPaymentRecordNotFoundError(orderID string) *AppError {
	return NewNotFoundError("payment record not found", "order_id="+orderID)
}

// NewStoreTransactionError wraps a failed store transaction.
func NewStoreTransactionError(details string) *AppError {
	return NewInternalError("store transaction failed", details)
}
