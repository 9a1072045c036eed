package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres-backed catalog. Prices live in the products table and
// are maintained outside checkout (migrations plus the seeder tool).
type Store struct {
	Pool *pgxpool.Pool
}

// UnitPrice implements Catalog against the products table.
func (s *Store) UnitPrice(ctx context.Context, product Product) (float64, error) {
	if s == nil || s.Pool == nil {
		return 0, errors.New("catalog store not configured")
	}
	var price float64
	err := s.Pool.QueryRow(ctx,
		`SELECT price FROM products WHERE name = $1 AND unit = $2`,
		product.Name, string(product.Unit),
	).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s (%s): %w", product.Name, product.Unit, ErrUnknownProduct)
		}
		return 0, fmt.Errorf("query unit price: %w", err)
	}
	return price, nil
}

// Add inserts or updates a product price.
func (s *Store) Add(ctx context.Context, product Product, price float64) error {
	if s == nil || s.Pool == nil {
		return errors.New("catalog store not configured")
	}
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO products (name, unit, price) VALUES ($1, $2, $3)
		 ON CONFLICT (name, unit) DO UPDATE SET price = EXCLUDED.price`,
		product.Name, string(product.Unit), price,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// List returns every catalog entry ordered by name and unit.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if s == nil || s.Pool == nil {
		return nil, errors.New("catalog store not configured")
	}
	rows, err := s.Pool.Query(ctx, `SELECT name, unit, price FROM products ORDER BY name, unit`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			name  string
			unit  string
			price float64
		)
		if err := rows.Scan(&name, &unit, &price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		parsed, err := ParseUnit(unit)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", name, err)
		}
		entries = append(entries, Entry{Product: Product{Name: name, Unit: parsed}, Price: price})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return entries, nil
}
