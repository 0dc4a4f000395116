// Package cargo decides whether a location has goods for sale and, if so,
// which goods and how much of each.
package cargo

import (
	"fmt"

	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
)

// Location describes the place being visited.
type Location struct {
	Size        int
	Wealth      int
	TradeCenter bool
}

// Validate rejects negative size or wealth.
func (l Location) Validate() error {
	if l.Size < 0 {
		return fmt.Errorf("%w: location size %d is negative", goods.ErrInvalidInput, l.Size)
	}
	if l.Wealth < 0 {
		return fmt.Errorf("%w: location wealth %d is negative", goods.ErrInvalidInput, l.Wealth)
	}
	return nil
}

// Threshold is the highest availability roll that still finds cargo.
func (l Location) Threshold() int {
	return (l.Size + l.Wealth) * 10
}

// IsAvailable reports whether an availability roll finds cargo at a
// location of the given size and wealth.
func IsAvailable(roll, size, wealth int) bool {
	return roll <= (size+wealth)*10
}

// CheckAvailability rolls for cargo. A trade center rolls twice and finds
// cargo if either roll passes. The rolls are returned and recorded in log.
func CheckAvailability(loc Location, src entropy.Source, log *entropy.Log) (bool, []int, error) {
	if err := loc.Validate(); err != nil {
		return false, nil, err
	}

	n := 1
	if loc.TradeCenter {
		n = 2
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = entropy.RollD100(src)
	}
	if log != nil {
		log.Record(entropy.PurposeAvailability, "", rolls...)
	}

	for _, r := range rolls {
		if IsAvailable(r, loc.Size, loc.Wealth) {
			return true, rolls, nil
		}
	}
	return false, rolls, nil
}
