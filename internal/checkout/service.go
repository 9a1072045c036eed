package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/obs"
	"github.com/noah-isme/backend-kasir/internal/pricing"
	"github.com/noah-isme/backend-kasir/internal/receipt"
)

// Service turns a cart into a priced, discounted receipt. The catalog is the
// external price source; the offer registry is optional and read-only.
type Service struct {
	Catalog catalog.Catalog
	Offers  *pricing.Offers
	Metrics *obs.CheckoutMetrics
}

// Checkout prices every cart line in insertion order, then applies at most
// one discount per distinct product using its merged quantity. Discount
// entries follow the order in which products first entered the cart.
//
// A failing discount computation aborts the whole checkout; an offer that
// cannot be evaluated means the registry is misconfigured and the receipt
// would be wrong.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart) (*receipt.Receipt, error) {
	if s == nil || s.Catalog == nil {
		return nil, errors.New("checkout service not configured")
	}
	if c == nil {
		return nil, fmt.Errorf("cart is required: %w", pricing.ErrInvalidInput)
	}

	rcpt := receipt.New()
	for _, line := range c.Lines() {
		price, err := s.Catalog.UnitPrice(ctx, line.Product)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", line.Product.Name, err)
		}
		rcpt.AddItem(line.Product, line.Quantity, price, line.Quantity*price)
	}

	for _, product := range c.Products() {
		offer, ok := s.Offers.Get(product)
		if !ok {
			continue
		}
		price, err := s.Catalog.UnitPrice(ctx, product)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", product.Name, err)
		}
		discount, err := pricing.Compute(product, c.Quantity(product), price, offer)
		if err != nil {
			return nil, fmt.Errorf("discount %s: %w", product.Name, err)
		}
		if discount != nil {
			rcpt.AddDiscount(*discount)
		}
	}

	if s.Metrics != nil {
		s.Metrics.ObserveReceipt(len(rcpt.Items()), len(rcpt.Discounts()), rcpt.Total())
	}
	return rcpt, nil
}
