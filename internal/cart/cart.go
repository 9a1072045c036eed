package cart

import "github.com/noah-isme/backend-kasir/internal/catalog"

// Line is one cart addition exactly as it happened. Repeated additions of the
// same product stay separate lines.
type Line struct {
	Product  catalog.Product
	Quantity float64
}

// Cart accumulates product additions. It keeps two views of its contents: the
// ordered, never-merged addition history used for receipt lines, and a running
// per-product quantity used for discount eligibility. The merged map is owned
// by the cart and never handed out by reference.
//
// The cart performs no validation; zero, negative, and fractional quantities
// are recorded as-is. Discount computation rejects them later.
type Cart struct {
	lines      []Line
	order      []catalog.Product
	quantities map[catalog.Product]float64
}

// New constructs an empty cart.
func New() *Cart {
	return &Cart{quantities: make(map[catalog.Product]float64)}
}

// Add appends one unit of the product.
func (c *Cart) Add(product catalog.Product) {
	c.AddQuantity(product, 1)
}

// AddQuantity appends a line and bumps the product's running quantity.
func (c *Cart) AddQuantity(product catalog.Product, quantity float64) {
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	if _, seen := c.quantities[product]; !seen {
		c.order = append(c.order, product)
	}
	c.quantities[product] += quantity
}

// Lines returns a copy of the addition history in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Products returns the distinct products in order of first addition.
func (c *Cart) Products() []catalog.Product {
	out := make([]catalog.Product, len(c.order))
	copy(out, c.order)
	return out
}

// Quantity returns the merged quantity of a product across all additions.
func (c *Cart) Quantity(product catalog.Product) float64 {
	return c.quantities[product]
}
