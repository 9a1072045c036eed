package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

// OffersStore loads the offer registry from Postgres. Offers are configured
// out-of-band (seeder, admin tooling) and read once at startup.
type OffersStore struct {
	Pool *pgxpool.Pool
}

// Load reads every registered offer ordered by registration time so the
// in-memory registry keeps a stable iteration order.
func (s *OffersStore) Load(ctx context.Context) (*Offers, error) {
	if s == nil || s.Pool == nil {
		return nil, errors.New("offers store not configured")
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT product_name, product_unit, offer_type, argument FROM offers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	offers := NewOffers()
	for rows.Next() {
		var (
			name      string
			unit      string
			offerType string
			argument  float64
		)
		if err := rows.Scan(&name, &unit, &offerType, &argument); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		parsedUnit, err := catalog.ParseUnit(unit)
		if err != nil {
			return nil, fmt.Errorf("offer for %s: %w", name, err)
		}
		parsedType, err := ParseOfferType(offerType)
		if err != nil {
			return nil, fmt.Errorf("offer for %s: %w", name, err)
		}
		offers.Add(catalog.Product{Name: name, Unit: parsedUnit}, Offer{Type: parsedType, Argument: argument})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}
