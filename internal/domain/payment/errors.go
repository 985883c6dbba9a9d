package payment

import "errors"

// ErrPaymentNotFound indicates no payment record exists for an order
// identifier. The record is created when the transaction is initiated,
// so a miss usually means the gateway notified before the initiation
// write landed; callers surface it as retryable.
var ErrPaymentNotFound = errors.New("payment record not found")
