package receipt

import (
	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/pricing"
)

// Item is one priced receipt line. Total is recorded as supplied by the
// caller at line-creation time; the receipt does not recompute it.
type Item struct {
	Product  catalog.Product
	Quantity float64
	Price    float64
	Total    float64
}

// Receipt aggregates priced lines and discounts. Lines and discounts keep
// their insertion order; the grand total is derived on demand.
type Receipt struct {
	id        uuid.UUID
	items     []Item
	discounts []pricing.Discount
}

// New constructs an empty receipt with a fresh identifier.
func New() *Receipt {
	return &Receipt{id: uuid.New()}
}

// ID returns the receipt identifier.
func (r *Receipt) ID() uuid.UUID {
	return r.id
}

// AddItem appends a priced line.
func (r *Receipt) AddItem(product catalog.Product, quantity, price, total float64) {
	r.items = append(r.items, Item{Product: product, Quantity: quantity, Price: price, Total: total})
}

// AddDiscount appends a discount entry.
func (r *Receipt) AddDiscount(discount pricing.Discount) {
	r.discounts = append(r.discounts, discount)
}

// Items returns a copy of the receipt lines.
func (r *Receipt) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Discounts returns a copy of the applied discounts.
func (r *Receipt) Discounts() []pricing.Discount {
	out := make([]pricing.Discount, len(r.discounts))
	copy(out, r.discounts)
	return out
}

// Total recomputes the rounded grand total from the current contents.
// Discount amounts are negative, so a plain sum applies them.
func (r *Receipt) Total() float64 {
	var total float64
	for _, item := range r.items {
		total += item.Total
	}
	for _, discount := range r.discounts {
		total += discount.Amount
	}
	return pricing.RoundCurrency(total)
}
