package goods

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a Store:
//
//	seasons:
//	  spring:
//	    - {low: 1, high: 9, product: fish}
//	prices:
//	  fish: {spring: "0.5", summer: "0.5", autumn: "0.5", winter: "1"}
//	  alcohol: {spring: special, summer: special, autumn: special, winter: special}
type Document struct {
	Seasons map[string][]Range           `yaml:"seasons"`
	Prices  map[string]map[string]string `yaml:"prices"`
}

// LoadYAML reads a table document from path and builds a Store from it.
func LoadYAML(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a Store from a YAML table document.
func ParseYAML(data []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tables yaml: %w", err)
	}
	return doc.Store()
}

// Store converts the document into a validated Store.
func (d Document) Store() (*Store, error) {
	rolls := make(map[Season][]Range, len(d.Seasons))
	for name, ranges := range d.Seasons {
		season, err := ParseSeason(name)
		if err != nil {
			return nil, fmt.Errorf("seasons: %w", err)
		}
		if _, dup := rolls[season]; dup {
			return nil, fmt.Errorf("seasons: %s listed more than once", season)
		}
		rolls[season] = ranges
	}

	prices := make(map[string]SeasonPrices, len(d.Prices))
	for product, bySeason := range d.Prices {
		var sp SeasonPrices
		var filled [numSeasons]bool
		for name, raw := range bySeason {
			season, err := ParseSeason(name)
			if err != nil {
				return nil, fmt.Errorf("prices %s: %w", product, err)
			}
			if filled[season] {
				return nil, fmt.Errorf("prices %s: %s listed more than once", product, season)
			}
			bp, err := ParseBasePrice(raw)
			if err != nil {
				return nil, fmt.Errorf("prices %s %s: %w", product, name, err)
			}
			sp[season] = bp
			filled[season] = true
		}
		for _, season := range Seasons {
			if !filled[season] {
				return nil, fmt.Errorf("prices %s: missing %s price", product, season)
			}
		}
		prices[product] = sp
	}

	return NewStore(rolls, prices)
}

// Document returns the YAML form of the store.
func (s *Store) Document() Document {
	doc := Document{
		Seasons: make(map[string][]Range, numSeasons),
		Prices:  make(map[string]map[string]string, len(s.prices)),
	}
	for _, season := range Seasons {
		doc.Seasons[season.String()] = s.Ranges(season)
	}
	for product, sp := range s.prices {
		bySeason := make(map[string]string, numSeasons)
		for _, season := range Seasons {
			bySeason[season.String()] = sp[season].String()
		}
		doc.Prices[product] = bySeason
	}
	return doc
}

// EncodeYAML encodes the store as a table document.
func (s *Store) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(s.Document())
}
