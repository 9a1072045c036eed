package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingCatalog struct {
	inner Catalog
	calls atomic.Int64
}

func (c *countingCatalog) UnitPrice(ctx context.Context, product Product) (float64, error) {
	c.calls.Add(1)
	return c.inner.UnitPrice(ctx, product)
}

func newCacheFixture(t *testing.T) (*Cached, *countingCatalog, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewInMemory()
	store.Add(Product{Name: "toothbrush", Unit: UnitEach}, 0.99)
	counting := &countingCatalog{inner: store}

	return &Cached{Inner: counting, Client: client, TTL: time.Minute}, counting, mr
}

func TestCachedHitSkipsInnerLookup(t *testing.T) {
	cached, counting, _ := newCacheFixture(t)
	toothbrush := Product{Name: "toothbrush", Unit: UnitEach}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		price, err := cached.UnitPrice(ctx, toothbrush)
		if err != nil {
			t.Fatalf("unit price: %v", err)
		}
		if price != 0.99 {
			t.Fatalf("expected 0.99, got %v", price)
		}
	}
	if got := counting.calls.Load(); got != 1 {
		t.Fatalf("expected a single inner lookup, got %d", got)
	}
}

func TestCachedExpiryFallsThrough(t *testing.T) {
	cached, counting, mr := newCacheFixture(t)
	toothbrush := Product{Name: "toothbrush", Unit: UnitEach}
	ctx := context.Background()

	if _, err := cached.UnitPrice(ctx, toothbrush); err != nil {
		t.Fatalf("unit price: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := cached.UnitPrice(ctx, toothbrush); err != nil {
		t.Fatalf("unit price after expiry: %v", err)
	}
	if got := counting.calls.Load(); got != 2 {
		t.Fatalf("expected two inner lookups, got %d", got)
	}
}

func TestCachedUnknownProductNotCached(t *testing.T) {
	cached, counting, _ := newCacheFixture(t)
	caviar := Product{Name: "caviar", Unit: UnitEach}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := cached.UnitPrice(ctx, caviar)
		if !errors.Is(err, ErrUnknownProduct) {
			t.Fatalf("expected ErrUnknownProduct, got %v", err)
		}
	}
	if got := counting.calls.Load(); got != 2 {
		t.Fatalf("expected two inner lookups, got %d", got)
	}
}

func TestCachedWorksWithoutRedis(t *testing.T) {
	store := NewInMemory()
	store.Add(Product{Name: "milk", Unit: UnitEach}, 1.19)
	cached := &Cached{Inner: store}

	price, err := cached.UnitPrice(context.Background(), Product{Name: "milk", Unit: UnitEach})
	if err != nil {
		t.Fatalf("unit price: %v", err)
	}
	if price != 1.19 {
		t.Fatalf("expected 1.19, got %v", price)
	}
}
