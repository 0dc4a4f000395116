// Command tablesdb seeds a trade-table catalog database and prints the
// tables it holds.
//
//	tablesdb -catalog data/tables.db seed [-tables tables.yaml]
//	tablesdb -catalog data/tables.db show
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/tradegoods/internal/catalog"
	"github.com/talgya/tradegoods/internal/goods"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dsn := flag.String("catalog", "data/tables.db", "catalog database: sqlite path or postgres URL")
	tablesPath := flag.String("tables", "", "YAML tables to seed instead of the built-in tables")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd != "seed" && cmd != "show" {
		fmt.Fprintln(os.Stderr, "usage: tablesdb [-catalog dsn] [-tables file] seed|show")
		os.Exit(2)
	}

	if catalog.Dialect(*dsn) == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(*dsn), 0o755); err != nil {
			slog.Error("failed to create catalog directory", "error", err)
			os.Exit(1)
		}
	}

	db, err := catalog.Open(*dsn)
	if err != nil {
		slog.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	switch cmd {
	case "seed":
		err = seed(db, *tablesPath)
	case "show":
		err = show(db)
	}
	if err != nil {
		slog.Error(cmd+" failed", "error", err)
		db.Close()
		os.Exit(1)
	}
}

func seed(db *catalog.DB, tablesPath string) error {
	tables := goods.Default()
	source := "built-in"
	if tablesPath != "" {
		var err error
		if tables, err = goods.LoadYAML(tablesPath); err != nil {
			return err
		}
		source = tablesPath
	}
	if err := db.SaveStore(tables); err != nil {
		return fmt.Errorf("save tables: %w", err)
	}
	return db.SaveMeta("source", source)
}

func show(db *catalog.DB) error {
	tables, err := db.LoadStore()
	if err != nil {
		return err
	}
	if source, err := db.GetMeta("source"); err == nil {
		fmt.Printf("# source: %s\n", source)
	}
	out, err := tables.EncodeYAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
