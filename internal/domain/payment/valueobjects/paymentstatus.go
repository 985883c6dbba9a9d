package valueobjects

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusChallenge PaymentStatus = "challenge"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusChallenge:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsSuccess() bool {
	return s == PaymentStatusSuccess
}

// IsFinal reports whether the status can no longer change. A challenge
// is not final: the gateway's fraud review resolves it to success or
// failed later.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

func (s PaymentStatus) String() string {
	return string(s)
}
