package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownProduct indicates the catalog holds no price for the product.
var ErrUnknownProduct = errors.New("product not in catalog")

// Unit describes how a product is measured at the till.
type Unit string

const (
	// UnitEach is for products sold per piece.
	UnitEach Unit = "each"
	// UnitKilo is for products sold by weight.
	UnitKilo Unit = "kilo"
)

// ParseUnit converts free-form input into a Unit.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "each":
		return UnitEach, nil
	case "kilo":
		return UnitKilo, nil
	default:
		return "", fmt.Errorf("unknown product unit: %q", value)
	}
}

// Product identifies a sellable article. Two products are the same article
// iff name and unit match; the zero-cost comparison makes Product usable as
// a map key across the cart, registry, and receipt.
type Product struct {
	Name string
	Unit Unit
}

// Catalog supplies unit prices. Implementations are expected to be backed by
// an external system; lookups take a context and may fail.
type Catalog interface {
	UnitPrice(ctx context.Context, product Product) (float64, error)
}

// Entry pairs a product with its current unit price.
type Entry struct {
	Product Product
	Price   float64
}

// InMemory is a map-backed Catalog used by tests, tools, and library callers
// that do not need the database-backed store.
type InMemory struct {
	mu     sync.RWMutex
	prices map[Product]float64
}

// NewInMemory constructs an empty in-memory catalog.
func NewInMemory() *InMemory {
	return &InMemory{prices: make(map[Product]float64)}
}

// Add registers or replaces the unit price for a product.
func (c *InMemory) Add(product Product, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[product] = price
}

// UnitPrice implements Catalog.
func (c *InMemory) UnitPrice(_ context.Context, product Product) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	price, ok := c.prices[product]
	if !ok {
		return 0, fmt.Errorf("%s (%s): %w", product.Name, product.Unit, ErrUnknownProduct)
	}
	return price, nil
}

// List implements Lister.
func (c *InMemory) List(_ context.Context) ([]Entry, error) {
	return c.Entries(), nil
}

// Entries returns the catalog contents sorted by product name then unit.
func (c *InMemory) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]Entry, 0, len(c.prices))
	for product, price := range c.prices {
		entries = append(entries, Entry{Product: product, Price: price})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Product.Name != entries[j].Product.Name {
			return entries[i].Product.Name < entries[j].Product.Name
		}
		return entries[i].Product.Unit < entries[j].Product.Unit
	})
	return entries
}
