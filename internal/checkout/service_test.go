package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/checkout"
	"github.com/noah-isme/backend-kasir/internal/pricing"
)

var (
	toothbrush = catalog.Product{Name: "toothbrush", Unit: catalog.UnitEach}
	apples     = catalog.Product{Name: "apples", Unit: catalog.UnitKilo}
	rice       = catalog.Product{Name: "rice", Unit: catalog.UnitEach}
)

func newCatalog() *catalog.InMemory {
	store := catalog.NewInMemory()
	store.Add(toothbrush, 0.99)
	store.Add(apples, 1.99)
	store.Add(rice, 2.49)
	return store
}

func TestCheckoutAppliesThreeForTwo(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(toothbrush, pricing.Offer{Type: pricing.ThreeForTwo})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.AddQuantity(toothbrush, 3)

	rcpt, err := svc.Checkout(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, rcpt.Items(), 1)
	require.Len(t, rcpt.Discounts(), 1)
	require.InDelta(t, -0.99, rcpt.Discounts()[0].Amount, 1e-9)
	require.Equal(t, 1.98, rcpt.Total())
}

func TestCheckoutBelowGroupSizePaysFullPrice(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(toothbrush, pricing.Offer{Type: pricing.ThreeForTwo})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.AddQuantity(toothbrush, 2)

	rcpt, err := svc.Checkout(context.Background(), c)
	require.NoError(t, err)
	require.Empty(t, rcpt.Discounts())
	require.Equal(t, 1.98, rcpt.Total())
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := &checkout.Service{Catalog: newCatalog(), Offers: pricing.NewOffers()}

	rcpt, err := svc.Checkout(context.Background(), cart.New())
	require.NoError(t, err)
	require.Empty(t, rcpt.Items())
	require.Empty(t, rcpt.Discounts())
	require.Equal(t, 0.0, rcpt.Total())
}

func TestCheckoutMergesQuantitiesForDiscounts(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(toothbrush, pricing.Offer{Type: pricing.ThreeForTwo})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.Add(toothbrush)
	c.AddQuantity(apples, 1.5)
	c.AddQuantity(toothbrush, 2)

	rcpt, err := svc.Checkout(context.Background(), c)
	require.NoError(t, err)

	// Receipt lines mirror the additions; the discount uses the merged
	// toothbrush quantity of three.
	require.Len(t, rcpt.Items(), 3)
	require.Equal(t, toothbrush, rcpt.Items()[0].Product)
	require.Equal(t, apples, rcpt.Items()[1].Product)
	require.Equal(t, toothbrush, rcpt.Items()[2].Product)
	require.Len(t, rcpt.Discounts(), 1)
	require.InDelta(t, -0.99, rcpt.Discounts()[0].Amount, 1e-9)
}

func TestCheckoutDiscountOrderFollowsCart(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(toothbrush, pricing.Offer{Type: pricing.ThreeForTwo})
	offers.Add(rice, pricing.Offer{Type: pricing.PercentOff, Argument: 10})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.AddQuantity(rice, 2)
	c.AddQuantity(toothbrush, 3)

	rcpt, err := svc.Checkout(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, rcpt.Discounts(), 2)
	require.Equal(t, rice, rcpt.Discounts()[0].Product)
	require.Equal(t, toothbrush, rcpt.Discounts()[1].Product)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	svc := &checkout.Service{Catalog: newCatalog(), Offers: pricing.NewOffers()}

	c := cart.New()
	c.Add(catalog.Product{Name: "caviar", Unit: catalog.UnitEach})

	_, err := svc.Checkout(context.Background(), c)
	require.ErrorIs(t, err, catalog.ErrUnknownProduct)
}

func TestCheckoutDiscountErrorAborts(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(rice, pricing.Offer{Type: pricing.PercentOff, Argument: 150})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.AddQuantity(rice, 2)

	_, err := svc.Checkout(context.Background(), c)
	require.ErrorIs(t, err, pricing.ErrInvalidInput)
}

func TestCheckoutUnknownOfferTypeSurfaces(t *testing.T) {
	offers := pricing.NewOffers()
	offers.Add(rice, pricing.Offer{Type: pricing.OfferType("mystery")})
	svc := &checkout.Service{Catalog: newCatalog(), Offers: offers}

	c := cart.New()
	c.Add(rice)

	_, err := svc.Checkout(context.Background(), c)
	require.ErrorIs(t, err, pricing.ErrUnknownOfferType)
}

func TestCheckoutWithoutOffersRegistry(t *testing.T) {
	svc := &checkout.Service{Catalog: newCatalog()}

	c := cart.New()
	c.Add(toothbrush)

	rcpt, err := svc.Checkout(context.Background(), c)
	require.NoError(t, err)
	require.Empty(t, rcpt.Discounts())
	require.Equal(t, 0.99, rcpt.Total())
}

func TestCheckoutNotConfigured(t *testing.T) {
	var svc *checkout.Service
	_, err := svc.Checkout(context.Background(), cart.New())
	require.Error(t, err)

	empty := &checkout.Service{}
	_, err = empty.Checkout(context.Background(), cart.New())
	require.Error(t, err)
	require.False(t, errors.Is(err, pricing.ErrInvalidInput))
}

func TestCheckoutNilCart(t *testing.T) {
	svc := &checkout.Service{Catalog: newCatalog(), Offers: pricing.NewOffers()}
	_, err := svc.Checkout(context.Background(), nil)
	require.ErrorIs(t, err, pricing.ErrInvalidInput)
}
