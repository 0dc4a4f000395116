// Package goods holds the trade-goods tables: which product a d100 roll
// selects in each season and what each product costs per unit.
package goods

import (
	"fmt"
	"strings"
)

// Season selects the roll table and the price column.
type Season uint8

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter

	numSeasons = 4
)

// Seasons lists every season in table order.
var Seasons = [numSeasons]Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// String returns the lower-case season name used in tables and prompts.
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four seasons.
func (s Season) Valid() bool {
	return s < numSeasons
}

// ParseSeason maps a season name to its Season. Unknown names are rejected
// rather than defaulted.
func ParseSeason(name string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "autumn":
		return SeasonAutumn, nil
	case "winter":
		return SeasonWinter, nil
	}
	return 0, fmt.Errorf("%w: unknown season %q", ErrInvalidInput, name)
}
