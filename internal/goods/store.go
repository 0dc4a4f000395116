package goods

import (
	"fmt"
	"sort"
)

// Range maps the inclusive d100 interval [Low, High] to a product.
type Range struct {
	Low     int    `yaml:"low"`
	High    int    `yaml:"high"`
	Product string `yaml:"product"`
}

// Store is an immutable pair of tables: season roll ranges and per-season
// base prices. A Store returned by NewStore always partitions 1..100 for
// every season, so it can be shared between goroutines without locking.
type Store struct {
	rolls  [numSeasons][]Range
	prices map[string]SeasonPrices
}

// NewStore copies and validates the given tables.
func NewStore(rolls map[Season][]Range, prices map[string]SeasonPrices) (*Store, error) {
	s := &Store{prices: make(map[string]SeasonPrices, len(prices))}

	for name, p := range prices {
		if name == "" {
			return nil, fmt.Errorf("price table: empty product name")
		}
		for _, season := range Seasons {
			if !p[season].Special && p[season].Value.IsNegative() {
				return nil, fmt.Errorf("price table: %s has negative %s price", name, season)
			}
		}
		s.prices[name] = p
	}

	for _, season := range Seasons {
		ranges, ok := rolls[season]
		if !ok {
			return nil, fmt.Errorf("roll table: missing season %s", season)
		}
		sorted := append([]Range(nil), ranges...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Low < sorted[j].Low })
		if err := checkPartition(sorted); err != nil {
			return nil, fmt.Errorf("roll table %s: %w", season, err)
		}
		for _, r := range sorted {
			if _, ok := s.prices[r.Product]; !ok {
				return nil, fmt.Errorf("roll table %s: %w: %q has no price entry", season, ErrUnknownProduct, r.Product)
			}
		}
		s.rolls[season] = sorted
	}

	return s, nil
}

// checkPartition verifies that sorted ranges cover 1..100 with no gaps or
// overlaps.
func checkPartition(sorted []Range) error {
	next := 1
	for _, r := range sorted {
		if r.Product == "" {
			return fmt.Errorf("range %d-%d has no product", r.Low, r.High)
		}
		if r.Low > r.High {
			return fmt.Errorf("range %d-%d is inverted", r.Low, r.High)
		}
		if r.Low < next {
			return fmt.Errorf("range %d-%d overlaps previous range", r.Low, r.High)
		}
		if r.Low > next {
			return fmt.Errorf("gap at %d-%d", next, r.Low-1)
		}
		next = r.High + 1
	}
	if next != 101 {
		return fmt.Errorf("ranges end at %d, want 100", next-1)
	}
	return nil
}

// LookupProduct returns the product whose range in season contains roll.
func (s *Store) LookupProduct(season Season, roll int) (string, error) {
	if !season.Valid() {
		return "", fmt.Errorf("%w: season %d", ErrInvalidInput, season)
	}
	ranges := s.rolls[season]
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].High >= roll })
	if i == len(ranges) || ranges[i].Low > roll {
		return "", fmt.Errorf("%w: %d in %s", ErrRangeLookup, roll, season)
	}
	return ranges[i].Product, nil
}

// LookupBasePrice returns the product's base price for season.
func (s *Store) LookupBasePrice(product string, season Season) (BasePrice, error) {
	if !season.Valid() {
		return BasePrice{}, fmt.Errorf("%w: season %d", ErrInvalidInput, season)
	}
	p, ok := s.prices[product]
	if !ok {
		return BasePrice{}, fmt.Errorf("%w: %q", ErrUnknownProduct, product)
	}
	return p[season], nil
}

// HasProduct reports whether product has a price entry.
func (s *Store) HasProduct(product string) bool {
	_, ok := s.prices[product]
	return ok
}

// Products returns all priced product names in sorted order.
func (s *Store) Products() []string {
	names := make([]string, 0, len(s.prices))
	for name := range s.prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ranges returns a copy of the season's ranges, ordered by Low.
func (s *Store) Ranges(season Season) []Range {
	if !season.Valid() {
		return nil
	}
	return append([]Range(nil), s.rolls[season]...)
}

// Prices returns the season prices for product.
func (s *Store) Prices(product string) (SeasonPrices, bool) {
	p, ok := s.prices[product]
	return p, ok
}
