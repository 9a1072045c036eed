package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached decorates a Catalog with a Redis price cache. Misses fall through to
// the inner catalog; cache failures are treated as misses so a Redis outage
// never blocks a checkout.
type Cached struct {
	Inner  Catalog
	Client *redis.Client
	TTL    time.Duration
}

// UnitPrice implements Catalog.
func (c *Cached) UnitPrice(ctx context.Context, product Product) (float64, error) {
	if c == nil || c.Inner == nil {
		return 0, errors.New("cached catalog not configured")
	}
	key := priceKey(product)
	if c.Client != nil {
		if price, err := c.Client.Get(ctx, key).Float64(); err == nil {
			return price, nil
		}
	}
	price, err := c.Inner.UnitPrice(ctx, product)
	if err != nil {
		return 0, err
	}
	if c.Client != nil && c.TTL > 0 {
		_ = c.Client.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), c.TTL).Err()
	}
	return price, nil
}

func priceKey(product Product) string {
	return "catalog:price:" + product.Name + ":" + string(product.Unit)
}
