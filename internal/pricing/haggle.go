// Package pricing turns an offer and a buyer's decision into an initial
// asking price and a final haggled price.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/talgya/tradegoods/internal/goods"
)

// HaggleOutcome is the result of the buyer's haggle test. The zero value is
// neutral.
type HaggleOutcome uint8

const (
	HaggleNeutral HaggleOutcome = iota
	HaggleWorst
	HaggleBad
	HaggleGood
	HaggleBest
)

// HaggleOutcomes lists the outcomes in menu order (a through e).
var HaggleOutcomes = []HaggleOutcome{HaggleWorst, HaggleBad, HaggleNeutral, HaggleGood, HaggleBest}

var (
	multWorst   = decimal.RequireFromString("0.8")
	multBad     = decimal.RequireFromString("0.9")
	multNeutral = decimal.NewFromInt(1)
	multGood    = decimal.RequireFromString("1.1")
	multBest    = decimal.RequireFromString("1.2")
)

// Multiplier returns the price multiplier for the outcome. Anything
// unrecognized prices as neutral.
func (h HaggleOutcome) Multiplier() decimal.Decimal {
	switch h {
	case HaggleWorst:
		return multWorst
	case HaggleBad:
		return multBad
	case HaggleGood:
		return multGood
	case HaggleBest:
		return multBest
	default:
		return multNeutral
	}
}

// Code is the menu letter for the outcome.
func (h HaggleOutcome) Code() string {
	switch h {
	case HaggleWorst:
		return "a"
	case HaggleBad:
		return "b"
	case HaggleGood:
		return "d"
	case HaggleBest:
		return "e"
	default:
		return "c"
	}
}

// Label is the menu text for the outcome.
func (h HaggleOutcome) Label() string {
	switch h {
	case HaggleWorst:
		return "D (-20%)"
	case HaggleBad:
		return "S (-10%)"
	case HaggleGood:
		return "F (+10%)"
	case HaggleBest:
		return "FS (+20%)"
	default:
		return "N (+0%)"
	}
}

func (h HaggleOutcome) String() string {
	switch h {
	case HaggleWorst:
		return "worst"
	case HaggleBad:
		return "bad"
	case HaggleGood:
		return "good"
	case HaggleBest:
		return "best"
	default:
		return "neutral"
	}
}

// ParseHaggle reads a menu letter (a-e) or outcome name. Blank input is
// neutral; anything else is rejected.
func ParseHaggle(code string) (HaggleOutcome, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return HaggleNeutral, nil
	}
	for _, h := range HaggleOutcomes {
		if code == h.Code() || code == h.String() {
			return h, nil
		}
	}
	return HaggleNeutral, fmt.Errorf("%w: unknown haggle result %q", goods.ErrInvalidInput, code)
}

// MultiplierForCode is the lenient lookup: unknown codes price at 1.0.
func MultiplierForCode(code string) decimal.Decimal {
	h, err := ParseHaggle(code)
	if err != nil {
		return multNeutral
	}
	return h.Multiplier()
}
