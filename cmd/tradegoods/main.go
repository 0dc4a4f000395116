// Command tradegoods rolls the trade goods for sale at a location and
// walks the buyer through pricing and haggling.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/tradegoods/internal/cargo"
	"github.com/talgya/tradegoods/internal/catalog"
	"github.com/talgya/tradegoods/internal/config"
	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
	"github.com/talgya/tradegoods/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	seed := flag.Int64("seed", 0, "deterministic dice seed (overrides config)")
	tablesPath := flag.String("tables", "", "YAML trade tables (overrides config)")
	catalogDSN := flag.String("catalog", "", "catalog database: sqlite path or postgres URL (overrides config)")

	// Non-interactive roll.
	roll := flag.Bool("roll", false, "roll a visit without prompts and print the offers")
	size := flag.Int("size", 0, "location size (with -roll)")
	wealth := flag.Int("wealth", 0, "location wealth (with -roll)")
	tradeCenter := flag.Bool("trade-center", false, "location is a trade center (with -roll)")
	seasonName := flag.String("season", "spring", "season (with -roll)")
	goodsList := flag.String("goods", "", "comma-separated goods produced locally (with -roll)")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	err = cfg.Apply(config.Overrides{Seed: *seed, TablesPath: *tablesPath, CatalogDSN: *catalogDSN})
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	tables, err := loadTables(cfg)
	if err != nil {
		slog.Error("failed to load trade tables", "error", err)
		os.Exit(1)
	}

	src := diceSource(cfg)
	gen := cargo.NewGenerator(tables)

	if *roll {
		season, err := goods.ParseSeason(*seasonName)
		if err != nil {
			slog.Error("bad season", "error", err)
			os.Exit(1)
		}
		loc := cargo.Location{Size: *size, Wealth: *wealth, TradeCenter: *tradeCenter}
		v, err := gen.Visit(loc, season, src, cargo.ParseProductList(*goodsList))
		if err != nil {
			slog.Error("roll failed", "error", err)
			os.Exit(1)
		}
		session.PrintVisit(os.Stdout, v)
		return
	}

	console := session.NewConsole(os.Stdin, os.Stdout, gen, src)
	if _, err := console.Run(); err != nil {
		slog.Error("visit aborted", "error", err)
		os.Exit(1)
	}
}

// loadTables picks the table store: a YAML file, a catalog database, or the
// built-in tables.
func loadTables(cfg *config.Config) (*goods.Store, error) {
	switch {
	case cfg.TablesPath != "":
		slog.Debug("loading tables from file", "path", cfg.TablesPath)
		return goods.LoadYAML(cfg.TablesPath)
	case cfg.CatalogDSN != "":
		db, err := catalog.Open(cfg.CatalogDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if !db.HasTables() {
			slog.Warn("catalog is empty, using built-in tables", "dialect", catalog.Dialect(cfg.CatalogDSN))
			return goods.Default(), nil
		}
		return db.LoadStore()
	default:
		return goods.Default(), nil
	}
}

// diceSource picks the randomness: a fixed seed for reproducible visits,
// random.org when a key is configured, crypto/rand otherwise.
func diceSource(cfg *config.Config) entropy.Source {
	if cfg.Seed != 0 {
		slog.Debug("using seeded dice", "seed", cfg.Seed)
		return entropy.NewSeeded(cfg.Seed)
	}
	if c := entropy.NewClient(cfg.RandomOrg.APIKey, cfg.RandomOrg.Endpoint, cfg.RandomOrg.Timeout); c.Enabled() {
		slog.Debug("using random.org dice")
		return c
	}
	return entropy.Crypto()
}
