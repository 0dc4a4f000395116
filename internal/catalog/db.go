// Package catalog stores trade tables in SQLite or Postgres so a group can
// keep its own goods and prices outside the binary.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/tradegoods/internal/goods"
)

// DB wraps a catalog connection.
type DB struct {
	conn    *sqlx.DB
	dialect string
}

// Dialect picks the driver for a DSN: postgres URLs use pgx, anything else
// is a SQLite file path.
func Dialect(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Open opens or creates the catalog at dsn.
func Open(dsn string) (*DB, error) {
	dialect := Dialect(dsn)
	source := dsn
	if dialect == "sqlite" {
		source = dsn + "?_pragma=busy_timeout(5000)"
	}

	conn, err := sqlx.Open(dialect, source)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if dialect == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	db := &DB{conn: conn, dialect: dialect}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS roll_ranges (
		season TEXT NOT NULL,
		low INTEGER NOT NULL,
		high INTEGER NOT NULL,
		product TEXT NOT NULL,
		PRIMARY KEY (season, low)
	)`,
	`CREATE TABLE IF NOT EXISTS base_prices (
		product TEXT NOT NULL,
		season TEXT NOT NULL,
		price TEXT NOT NULL,
		PRIMARY KEY (product, season)
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func (db *DB) migrate() error {
	for _, stmt := range schema {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

type rangeRow struct {
	Season  string `db:"season"`
	Low     int    `db:"low"`
	High    int    `db:"high"`
	Product string `db:"product"`
}

type priceRow struct {
	Product string `db:"product"`
	Season  string `db:"season"`
	Price   string `db:"price"`
}

// SaveStore replaces the stored tables with s.
func (db *DB) SaveStore(s *goods.Store) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM roll_ranges"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM base_prices"); err != nil {
		return err
	}

	insertRange := tx.Rebind("INSERT INTO roll_ranges (season, low, high, product) VALUES (?, ?, ?, ?)")
	for _, season := range goods.Seasons {
		for _, r := range s.Ranges(season) {
			if _, err := tx.Exec(insertRange, season.String(), r.Low, r.High, r.Product); err != nil {
				return fmt.Errorf("insert range %s %d-%d: %w", season, r.Low, r.High, err)
			}
		}
	}

	insertPrice := tx.Rebind("INSERT INTO base_prices (product, season, price) VALUES (?, ?, ?)")
	for _, product := range s.Products() {
		prices, _ := s.Prices(product)
		for _, season := range goods.Seasons {
			if _, err := tx.Exec(insertPrice, product, season.String(), prices[season].String()); err != nil {
				return fmt.Errorf("insert price %s %s: %w", product, season, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("catalog saved", "products", len(s.Products()), "dialect", db.dialect)
	return nil
}

// LoadStore reads and validates the stored tables.
func (db *DB) LoadStore() (*goods.Store, error) {
	var ranges []rangeRow
	if err := db.conn.Select(&ranges, "SELECT season, low, high, product FROM roll_ranges ORDER BY season, low"); err != nil {
		return nil, fmt.Errorf("load ranges: %w", err)
	}
	var prices []priceRow
	if err := db.conn.Select(&prices, "SELECT product, season, price FROM base_prices ORDER BY product, season"); err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	doc := goods.Document{
		Seasons: make(map[string][]goods.Range),
		Prices:  make(map[string]map[string]string),
	}
	for _, r := range ranges {
		doc.Seasons[r.Season] = append(doc.Seasons[r.Season], goods.Range{Low: r.Low, High: r.High, Product: r.Product})
	}
	for _, p := range prices {
		if doc.Prices[p.Product] == nil {
			doc.Prices[p.Product] = make(map[string]string)
		}
		doc.Prices[p.Product][p.Season] = p.Price
	}

	s, err := doc.Store()
	if err != nil {
		return nil, fmt.Errorf("catalog tables: %w", err)
	}
	return s, nil
}

// HasTables reports whether any roll ranges are stored.
func (db *DB) HasTables() bool {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM roll_ranges"); err != nil {
		return false
	}
	return n > 0
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(tx.Rebind("DELETE FROM catalog_meta WHERE key = ?"), key); err != nil {
		return err
	}
	if _, err := tx.Exec(tx.Rebind("INSERT INTO catalog_meta (key, value) VALUES (?, ?)"), key, value); err != nil {
		return err
	}
	return tx.Commit()
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, db.conn.Rebind("SELECT value FROM catalog_meta WHERE key = ?"), key)
	return value, err
}
