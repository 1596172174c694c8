// Package pricing computes cart totals. The cart page, the payment page and
// order placement all price through ForCart so the three can never disagree.
package pricing

import "github.com/Deveshkumar24/HygienaX-E-commerce-store/models"

const (
	// BulkThreshold is the total quantity at which the bulk offer kicks in.
	BulkThreshold = 4
	// BulkDiscountRate is the fraction of the subtotal waived by the offer.
	BulkDiscountRate = 0.15
)

type Quote struct {
	Subtotal      float64
	Discount      float64
	TotalPrice    float64
	TotalQuantity int
	OfferApplied  bool
}

// ForCart prices the given cart lines. Each line's product price is read from
// the line's attached Product.
func ForCart(lines []models.CartLine) Quote {
	var q Quote
	for _, line := range lines {
		q.Subtotal += line.Product.Price * float64(line.Quantity)
		q.TotalQuantity += line.Quantity
	}
	if q.TotalQuantity >= BulkThreshold {
		q.Discount = q.Subtotal * BulkDiscountRate
		q.OfferApplied = true
	}
	q.TotalPrice = q.Subtotal - q.Discount
	return q
}
