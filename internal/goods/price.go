package goods

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const specialMarker = "special"

// BasePrice is a per-unit price, or the special marker for goods whose
// price is settled at the table instead of computed.
type BasePrice struct {
	Value   decimal.Decimal
	Special bool
}

// SeasonPrices holds one base price per season, indexed by Season.
type SeasonPrices [numSeasons]BasePrice

// Special returns the special price marker.
func Special() BasePrice {
	return BasePrice{Special: true}
}

// Price returns a numeric base price. It panics on a malformed literal and
// is meant for built-in tables only.
func Price(s string) BasePrice {
	return BasePrice{Value: decimal.RequireFromString(s)}
}

// ParseBasePrice parses a decimal string or the word "special".
func ParseBasePrice(s string) (BasePrice, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, specialMarker) {
		return Special(), nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return BasePrice{}, fmt.Errorf("%w: price %q: %v", ErrInvalidInput, s, err)
	}
	if v.IsNegative() {
		return BasePrice{}, fmt.Errorf("%w: negative price %q", ErrInvalidInput, s)
	}
	return BasePrice{Value: v}, nil
}

func (p BasePrice) String() string {
	if p.Special {
		return specialMarker
	}
	return p.Value.String()
}
