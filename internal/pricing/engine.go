package pricing

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

// ErrInvalidInput is returned when quantity, price, or an offer argument is
// outside its valid range.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownOfferType indicates an offer type with no calculation rule. This
// is a configuration bug and is never silently skipped.
var ErrUnknownOfferType = errors.New("unknown offer type")

// Compute calculates the discount an offer yields for the merged quantity of
// one product. It returns nil when the offer does not apply at this quantity.
//
// Validation happens here, once per product per checkout: a non-positive
// quantity or a negative unit price fails with ErrInvalidInput. Quantities
// are truncated to whole units before the offer arithmetic; weighed goods
// only count full units towards a bundle.
func Compute(product catalog.Product, quantity float64, unitPrice float64, offer Offer) (*Discount, error) {
	if quantity <= 0 || unitPrice < 0 {
		return nil, fmt.Errorf("quantity must be positive and unit price non-negative: %w", ErrInvalidInput)
	}
	units := int(quantity)

	switch offer.Type {
	case ThreeForTwo:
		return groupDiscount(product, units, unitPrice, 3, 2*unitPrice), nil
	case TwoForAmount:
		return groupDiscount(product, units, unitPrice, 2, offer.Argument), nil
	case FiveForAmount:
		return groupDiscount(product, units, unitPrice, 5, offer.Argument), nil
	case PercentOff:
		return percentDiscount(product, units, unitPrice, offer.Argument)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOfferType, offer.Type)
	}
}

// groupDiscount prices full bundles at the bundle price and the remainder at
// the unit price. A discount record is emitted whenever a bundle is reached,
// even when the bundle price saves nothing.
func groupDiscount(product catalog.Product, quantity int, unitPrice float64, groupSize int, bundlePrice float64) *Discount {
	if quantity < groupSize {
		return nil
	}
	groups := quantity / groupSize
	payable := float64(groups)*bundlePrice + float64(quantity%groupSize)*unitPrice
	return &Discount{
		Product:     product,
		Description: fmt.Sprintf("%d for %s", groupSize, formatAmount(bundlePrice)),
		Amount:      -(float64(quantity)*unitPrice - payable),
	}
}

func percentDiscount(product catalog.Product, quantity int, unitPrice float64, percent float64) (*Discount, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("discount percentage must be between 0 and 100: %w", ErrInvalidInput)
	}
	return &Discount{
		Product:     product,
		Description: formatAmount(percent) + "% off",
		Amount:      -float64(quantity) * unitPrice * percent / 100,
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
