package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talgya/tradegoods/internal/cargo"
	"github.com/talgya/tradegoods/internal/goods"
)

// ErrSpecialPrice is returned when a special-priced offer is asked for a
// numeric price.
var ErrSpecialPrice = errors.New("special price")

var (
	partialMarkup = decimal.RequireFromString("1.10")
	ten           = decimal.NewFromInt(10)
)

// Decision is what the buyer takes from an offer.
type Decision struct {
	BuyAll       bool
	PartialUnits int
}

func (d Decision) partial() bool {
	return !d.BuyAll && d.PartialUnits > 0
}

// Validate checks the decision against the offer. Zero partial units is
// allowed and prices as the whole lot; buying all ignores PartialUnits.
func (d Decision) Validate(o cargo.Offer) error {
	if d.BuyAll {
		return nil
	}
	if d.PartialUnits < 0 {
		return fmt.Errorf("%w: partial units %d is negative", goods.ErrInvalidInput, d.PartialUnits)
	}
	if d.PartialUnits > o.Size {
		return fmt.Errorf("%w: %d units exceeds cargo of %d", goods.ErrInvalidInput, d.PartialUnits, o.Size)
	}
	return nil
}

// EffectiveUnitPrice is the base price after the partial-purchase markup:
// base * 1.10 * units/size when buying part of the lot, base otherwise.
func EffectiveUnitPrice(o cargo.Offer, d Decision) (decimal.Decimal, error) {
	if o.Special() {
		return decimal.Zero, fmt.Errorf("%s: %w", o.Product, ErrSpecialPrice)
	}
	if err := d.Validate(o); err != nil {
		return decimal.Zero, err
	}
	if !d.partial() {
		return o.BasePrice.Value, nil
	}
	return o.BasePrice.Value.Mul(partialMarkup).
		Mul(decimal.NewFromInt(int64(d.PartialUnits))).
		Div(decimal.NewFromInt(int64(o.Size))), nil
}

// lineTotal is effective unit price * size/10, unrounded. The products are
// formed before the single division by size so that terminating results
// stay exact.
func lineTotal(o cargo.Offer, d Decision) decimal.Decimal {
	size := decimal.NewFromInt(int64(o.Size))
	total := o.BasePrice.Value.Mul(size)
	if d.partial() {
		total = total.Mul(partialMarkup).
			Mul(decimal.NewFromInt(int64(d.PartialUnits))).
			Div(size)
	}
	return total.Div(ten)
}

// roundPrice rounds to one decimal place, halves away from zero.
func roundPrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// Initial is the asking price before haggling. A declared partial purchase
// is already reflected.
func Initial(o cargo.Offer, d Decision) (decimal.Decimal, error) {
	if o.Special() {
		return decimal.Zero, fmt.Errorf("%s: %w", o.Product, ErrSpecialPrice)
	}
	if err := d.Validate(o); err != nil {
		return decimal.Zero, err
	}
	return roundPrice(lineTotal(o, d)), nil
}

// Final is the price after applying the haggle multiplier.
func Final(o cargo.Offer, d Decision, h HaggleOutcome) (decimal.Decimal, error) {
	if o.Special() {
		return decimal.Zero, fmt.Errorf("%s: %w", o.Product, ErrSpecialPrice)
	}
	if err := d.Validate(o); err != nil {
		return decimal.Zero, err
	}
	return roundPrice(lineTotal(o, d).Mul(h.Multiplier())), nil
}

// Quote is the priced result for one offer.
type Quote struct {
	Product string
	Special bool
	Initial decimal.Decimal
	Final   decimal.Decimal
	Haggle  HaggleOutcome
}

// PriceOffer prices an offer for a decision and haggle outcome. Special
// goods come back flagged with no numeric prices.
func PriceOffer(o cargo.Offer, d Decision, h HaggleOutcome) (Quote, error) {
	q := Quote{Product: o.Product, Haggle: h}
	if o.Special() {
		q.Special = true
		return q, nil
	}

	initial, err := Initial(o, d)
	if err != nil {
		return q, err
	}
	final, err := Final(o, d, h)
	if err != nil {
		return q, err
	}
	q.Initial = initial
	q.Final = final
	return q, nil
}

// InitialString renders the initial price with one decimal, or "special".
func (q Quote) InitialString() string {
	if q.Special {
		return "special"
	}
	return q.Initial.StringFixed(1)
}

// FinalString renders the final price with one decimal, or "special".
func (q Quote) FinalString() string {
	if q.Special {
		return "special"
	}
	return q.Final.StringFixed(1)
}
