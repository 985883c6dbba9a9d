package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderIDMarker is the fixed product marker leading every order
// identifier issued by this deployment.
const OrderIDMarker = "MIRR"

const orderIDDelimiter = "-"

// ErrMalformedOrderID indicates an order identifier that does not
// follow the MIRR-<userID>-<unix> format.
var ErrMalformedOrderID = errors.New("malformed order identifier")

// OrderID is the decoded form of a composite order identifier.
type OrderID struct {
	UserID   string
	IssuedAt time.Time
}

// EncodeOrderID builds the composite order identifier for a user and
// issue time.
func EncodeOrderID(userID string, issuedAt time.Time) string {
	return strings.Join([]string{OrderIDMarker, userID, strconv.FormatInt(issuedAt.Unix(), 10)}, orderIDDelimiter)
}

// DecodeOrderID parses a composite order identifier. The user
// identifier may itself contain the delimiter, so all interior
// segments are rejoined to form it.
func DecodeOrderID(raw string) (OrderID, error) {
	segments := strings.Split(raw, orderIDDelimiter)
	if len(segments) < 3 {
		return OrderID{}, fmt.Errorf("%w: expected at least 3 segments, got %d", ErrMalformedOrderID, len(segments))
	}
	if segments[0] != OrderIDMarker {
		return OrderID{}, fmt.Errorf("%w: unknown marker %q", ErrMalformedOrderID, segments[0])
	}

	last := segments[len(segments)-1]
	unix, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return OrderID{}, fmt.Errorf("%w: invalid timestamp %q", ErrMalformedOrderID, last)
	}

	userID := strings.Join(segments[1:len(segments)-1], orderIDDelimiter)
	if userID == "" {
		return OrderID{}, fmt.Errorf("%w: empty user identifier", ErrMalformedOrderID)
	}

	return OrderID{
		UserID:   userID,
		IssuedAt: time.Unix(unix, 0).UTC(),
	}, nil
}
