package pricing

import (
	"fmt"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

// OfferType enumerates the supported promotional offers.
type OfferType string

const (
	// ThreeForTwo bundles three units for the price of two.
	ThreeForTwo OfferType = "three_for_two"
	// TwoForAmount bundles two units for a fixed price.
	TwoForAmount OfferType = "two_for_amount"
	// FiveForAmount bundles five units for a fixed price.
	FiveForAmount OfferType = "five_for_amount"
	// PercentOff takes a percentage off the whole quantity.
	PercentOff OfferType = "percent_off"
)

// ParseOfferType converts stored input into an OfferType. Only the closed set
// above is accepted; anything else is a configuration mistake.
func ParseOfferType(value string) (OfferType, error) {
	switch OfferType(value) {
	case ThreeForTwo, TwoForAmount, FiveForAmount, PercentOff:
		return OfferType(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOfferType, value)
	}
}

// Offer attaches a promotional rule to a product. The meaning of Argument
// depends on the type: unused for ThreeForTwo, a bundle price for the
// *ForAmount types, and a percentage in [0,100] for PercentOff.
type Offer struct {
	Type     OfferType
	Argument float64
}

// Discount is a negative adjustment applied to a receipt for one product.
type Discount struct {
	Product     catalog.Product
	Description string
	Amount      float64
}

// Offers maps each product to at most one offer. Registration order of first
// occurrence is preserved so checkout output stays deterministic. The registry
// is populated during startup and read-only afterwards.
type Offers struct {
	order     []catalog.Product
	byProduct map[catalog.Product]Offer
}

// NewOffers constructs an empty registry.
func NewOffers() *Offers {
	return &Offers{byProduct: make(map[catalog.Product]Offer)}
}

// Add registers an offer for a product. A second registration for the same
// product replaces the first; the product keeps its original position.
func (o *Offers) Add(product catalog.Product, offer Offer) {
	if _, exists := o.byProduct[product]; !exists {
		o.order = append(o.order, product)
	}
	o.byProduct[product] = offer
}

// Get returns the offer registered for the product, if any.
func (o *Offers) Get(product catalog.Product) (Offer, bool) {
	if o == nil {
		return Offer{}, false
	}
	offer, ok := o.byProduct[product]
	return offer, ok
}

// Products returns the registered products in first-registration order.
func (o *Offers) Products() []catalog.Product {
	if o == nil {
		return nil
	}
	out := make([]catalog.Product, len(o.order))
	copy(out, o.order)
	return out
}

// Len reports how many products carry an offer.
func (o *Offers) Len() int {
	if o == nil {
		return 0
	}
	return len(o.byProduct)
}
