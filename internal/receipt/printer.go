package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/backend-kasir/internal/catalog"
)

// Printer renders a receipt as fixed-width text for till output.
type Printer struct {
	Columns int
	Now     func() time.Time
}

func (p Printer) columns() int {
	if p.Columns <= 0 {
		return 40
	}
	return p.Columns
}

func (p Printer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Render produces the printed receipt: header, one block per line item,
// applied discounts, and the rounded grand total.
func (p Printer) Render(r *Receipt) string {
	var b strings.Builder
	b.WriteString(p.line("Supermarket Receipt", ""))
	b.WriteString(p.line("Date:", p.now().Format("2006-01-02 15:04:05")))
	b.WriteString("\n")
	for _, item := range r.Items() {
		b.WriteString(p.line(item.Product.Name, formatPrice(item.Total)))
		if item.Quantity != 1 {
			fmt.Fprintf(&b, "  %s * %s\n", formatPrice(item.Price), formatQuantity(item.Product.Unit, item.Quantity))
		}
	}
	for _, discount := range r.Discounts() {
		b.WriteString(p.line(
			fmt.Sprintf("%s (%s)", discount.Description, discount.Product.Name),
			formatPrice(discount.Amount),
		))
	}
	b.WriteString("\n")
	b.WriteString(p.line("Total: ", formatPrice(r.Total())))
	b.WriteString("\n")
	b.WriteString(p.line("Thank you for shopping!", ""))
	b.WriteString(p.line("Please come back soon!", ""))
	return b.String()
}

// line lays out name and value at opposite ends of the column width,
// truncating the name when the pair does not fit.
func (p Printer) line(name, value string) string {
	width := p.columns()
	if len(name)+len(value) >= width {
		keep := width - len(value) - 3
		if keep < 0 {
			keep = 0
		}
		return name[:keep] + "..." + value + "\n"
	}
	return name + strings.Repeat(" ", width-len(name)-len(value)) + value + "\n"
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func formatQuantity(unit catalog.Unit, quantity float64) string {
	if unit == catalog.UnitEach {
		return strconv.Itoa(int(quantity))
	}
	return strconv.FormatFloat(quantity, 'f', 3, 64)
}
