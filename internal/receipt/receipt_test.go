package receipt

import (
	"testing"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/pricing"
)

func TestReceiptTotalSumsItemsAndDiscounts(t *testing.T) {
	toothbrush := catalog.Product{Name: "toothbrush", Unit: catalog.UnitEach}

	r := New()
	r.AddItem(toothbrush, 3, 0.99, 2.97)
	r.AddDiscount(pricing.Discount{Product: toothbrush, Description: "3 for 1.98", Amount: -0.99})

	if got := r.Total(); got != 1.98 {
		t.Fatalf("expected total 1.98, got %v", got)
	}
	// Total derives from contents and stays stable across calls.
	if got := r.Total(); got != 1.98 {
		t.Fatalf("expected repeated total 1.98, got %v", got)
	}
}

func TestReceiptEmpty(t *testing.T) {
	r := New()
	if got := r.Total(); got != 0 {
		t.Fatalf("expected zero total, got %v", got)
	}
	if len(r.Items()) != 0 || len(r.Discounts()) != 0 {
		t.Fatal("expected an empty receipt")
	}
	if r.ID().String() == "" {
		t.Fatal("expected a receipt identifier")
	}
}

func TestReceiptTrustsSuppliedLineTotal(t *testing.T) {
	milk := catalog.Product{Name: "milk", Unit: catalog.UnitEach}

	r := New()
	r.AddItem(milk, 2, 1.19, 5.00)
	if got := r.Total(); got != 5.00 {
		t.Fatalf("expected total 5.00, got %v", got)
	}
}

func TestReceiptAccessorsReturnCopies(t *testing.T) {
	milk := catalog.Product{Name: "milk", Unit: catalog.UnitEach}

	r := New()
	r.AddItem(milk, 1, 1.19, 1.19)
	r.AddDiscount(pricing.Discount{Product: milk, Description: "10% off", Amount: -0.119})

	items := r.Items()
	items[0].Total = 99
	discounts := r.Discounts()
	discounts[0].Amount = 99

	if r.Items()[0].Total != 1.19 {
		t.Fatal("mutating returned items must not affect the receipt")
	}
	if r.Discounts()[0].Amount != -0.119 {
		t.Fatal("mutating returned discounts must not affect the receipt")
	}
}

func TestReceiptTotalRounded(t *testing.T) {
	milk := catalog.Product{Name: "milk", Unit: catalog.UnitEach}

	r := New()
	r.AddItem(milk, 1, 1.005, 1.005)
	if got := r.Total(); got != 1.01 {
		t.Fatalf("expected rounded total 1.01, got %v", got)
	}
}
