package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
)

type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "IDR"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// ParseGrossAmount parses a gateway gross amount string ("75000.00",
// "75000") into Money in minor units. Parsing into fixed-point avoids
// float equality against price tables, which breaks under currency
// formatting drift like a trailing ".00".
func ParseGrossAmount(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Money{}, fmt.Errorf("gross amount is empty")
	}

	whole, frac := raw, ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		whole, frac = raw[:idx], raw[idx+1:]
	}
	if len(frac) > 2 {
		// More precision than minor units can hold; only trailing
		// zeros are tolerated.
		if strings.Trim(frac[2:], "0") != "" {
			return Money{}, fmt.Errorf("gross amount %q has sub-cent precision", s)
		}
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || major < 0 {
		return Money{}, fmt.Errorf("invalid gross amount %q", s)
	}
	minor, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid gross amount %q", s)
	}

	return NewMoney(major*100+minor, "IDR"), nil
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amountInCents/100, m.amountInCents%100, m.currency)
}
