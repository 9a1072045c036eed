package obs

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics groups domain collectors for the checkout path.
type CheckoutMetrics struct {
	ReceiptsTotal  prometheus.Counter
	LinesTotal     prometheus.Counter
	DiscountsTotal prometheus.Counter
	ReceiptAmount  prometheus.Histogram
}

// NewCheckoutMetrics registers checkout domain collectors.
func NewCheckoutMetrics(namespace string, reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &CheckoutMetrics{
		ReceiptsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_receipts_total",
			Help:      "Number of receipts produced.",
		}),
		LinesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_receipt_lines_total",
			Help:      "Number of priced receipt lines produced.",
		}),
		DiscountsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_discounts_total",
			Help:      "Number of discounts applied to receipts.",
		}),
		ReceiptAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_receipt_amount",
			Help:      "Distribution of rounded receipt grand totals.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
	m.ReceiptsTotal = registerCounter(reg, m.ReceiptsTotal)
	m.LinesTotal = registerCounter(reg, m.LinesTotal)
	m.DiscountsTotal = registerCounter(reg, m.DiscountsTotal)
	m.ReceiptAmount = registerHistogram(reg, m.ReceiptAmount)
	return m
}

// ObserveReceipt records one completed checkout.
func (m *CheckoutMetrics) ObserveReceipt(lines, discounts int, total float64) {
	if m == nil {
		return
	}
	m.ReceiptsTotal.Inc()
	m.LinesTotal.Add(float64(lines))
	m.DiscountsTotal.Add(float64(discounts))
	m.ReceiptAmount.Observe(total)
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) prometheus.Histogram {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing
			}
		}
		panic(err)
	}
	return h
}
