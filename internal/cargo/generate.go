package cargo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
)

// MaxTradeCenterOffers caps how many goods a trade center presents.
const MaxTradeCenterOffers = 2

// Offer is one lot of goods for sale.
type Offer struct {
	Product   string
	BasePrice goods.BasePrice
	Size      int
}

// Special reports whether the offer's price is settled outside the tables.
func (o Offer) Special() bool {
	return o.BasePrice.Special
}

// Generator draws offers from a table store.
type Generator struct {
	Tables *goods.Store
}

// NewGenerator returns a generator over tables, or over the built-in tables
// when tables is nil.
func NewGenerator(tables *goods.Store) *Generator {
	if tables == nil {
		tables = goods.Default()
	}
	return &Generator{Tables: tables}
}

// Generate draws the offers at loc for season. With no manual names the
// products are rolled on the season table; otherwise the names are the goods
// the location produces. Every roll is recorded in the returned log.
func (g *Generator) Generate(loc Location, season goods.Season, src entropy.Source, manual []string) ([]Offer, *entropy.Log, error) {
	log := entropy.NewLog()
	offers, err := g.GenerateWithLog(loc, season, src, manual, log)
	if err != nil {
		return nil, log, err
	}
	return offers, log, nil
}

// GenerateWithLog is Generate recording into an existing log, so an
// availability check and the offers it unlocks share one audit trail.
// A nil log records into a throwaway one.
func (g *Generator) GenerateWithLog(loc Location, season goods.Season, src entropy.Source, manual []string, log *entropy.Log) ([]Offer, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if loc.Size+loc.Wealth == 0 {
		return nil, fmt.Errorf("%w: location size and wealth are both zero", goods.ErrInvalidInput)
	}
	if !season.Valid() {
		return nil, fmt.Errorf("%w: season %d", goods.ErrInvalidInput, season)
	}
	if log == nil {
		log = entropy.NewLog()
	}

	var offers []Offer
	if len(manual) == 0 {
		o, err := g.randomOffer(loc, season, src, log, entropy.PurposeProduct, entropy.PurposeSize)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	} else {
		offers = g.manualOffers(loc, season, src, manual, log)
	}

	if loc.TradeCenter {
		o, err := g.randomOffer(loc, season, src, log, entropy.PurposeBonusProduct, entropy.PurposeBonusSize)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
		if len(offers) > MaxTradeCenterOffers {
			offers = offers[:MaxTradeCenterOffers]
		}
	}

	return offers, nil
}

func (g *Generator) randomOffer(loc Location, season goods.Season, src entropy.Source, log *entropy.Log, productPurpose, sizePurpose entropy.Purpose) (Offer, error) {
	productRoll := entropy.RollD100(src)
	product, err := g.Tables.LookupProduct(season, productRoll)
	if err != nil {
		return Offer{}, fmt.Errorf("select product: %w", err)
	}
	log.Record(productPurpose, product, productRoll)

	price, err := g.Tables.LookupBasePrice(product, season)
	if err != nil {
		return Offer{}, fmt.Errorf("price %s: %w", product, err)
	}

	sizeRoll := entropy.RollD100(src)
	log.Record(sizePurpose, product, sizeRoll)

	return Offer{Product: product, BasePrice: price, Size: Size(sizeRoll, loc)}, nil
}

// manualOffers builds offers from caller-named products. A location that is
// not a trade center sells one good, picked at random from the list.
// Unknown names are skipped.
func (g *Generator) manualOffers(loc Location, season goods.Season, src entropy.Source, names []string, log *entropy.Log) []Offer {
	if !loc.TradeCenter && len(names) > 1 {
		i := entropy.Choose(src, len(names))
		log.Record(entropy.PurposeManualPick, names[i], i+1)
		names = names[i : i+1]
	}

	var offers []Offer
	for _, name := range names {
		price, err := g.Tables.LookupBasePrice(name, season)
		if err != nil {
			slog.Debug("skipping manual product", "product", name, "error", err)
			continue
		}
		sizeRoll := entropy.RollD100(src)
		log.Record(entropy.PurposeSize, name, sizeRoll)
		offers = append(offers, Offer{Product: name, BasePrice: price, Size: Size(sizeRoll, loc)})
	}
	return offers
}

// ParseProductList splits a comma-separated list of product names. Names
// are trimmed and lower-cased; blanks are dropped.
func ParseProductList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
