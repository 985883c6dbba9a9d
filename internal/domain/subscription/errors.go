package subscription

import "errors"

var (
	// ErrUnknownAmount indicates a gross amount that matches no price
	// table or catalog entry. Matching is exact by design: nearest-price
	// matching could assign the wrong tier on rounding artifacts.
	ErrUnknownAmount = errors.New("amount does not match any tier price")

	// ErrUnknownTier indicates a tier with no entry in the policy table.
	ErrUnknownTier = errors.New("tier has no policy entry")
)
