package cargo

import (
	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
)

// Visit is the outcome of arriving at a location: the availability rolls,
// any offers, and the full roll log.
type Visit struct {
	Available         bool
	AvailabilityRolls []int
	Offers            []Offer
	Log               *entropy.Log
}

// Visit checks availability and, if cargo is for sale, generates offers.
// Both steps share one roll log.
func (g *Generator) Visit(loc Location, season goods.Season, src entropy.Source, manual []string) (Visit, error) {
	log := entropy.NewLog()
	v := Visit{Log: log}

	available, rolls, err := CheckAvailability(loc, src, log)
	if err != nil {
		return v, err
	}
	v.Available = available
	v.AvailabilityRolls = rolls
	if !available {
		return v, nil
	}

	offers, err := g.GenerateWithLog(loc, season, src, manual, log)
	if err != nil {
		return v, err
	}
	v.Offers = offers
	return v, nil
}
