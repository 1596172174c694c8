package pricing

import (
	"math"
	"testing"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
)

func line(price float64, qty int) models.CartLine {
	return models.CartLine{Product: models.Product{Price: price}, Quantity: qty}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestForCart(t *testing.T) {
	tests := []struct {
		name         string
		lines        []models.CartLine
		subtotal     float64
		discount     float64
		total        float64
		quantity     int
		offerApplied bool
	}{
		{
			name: "bulk offer applies at five units",
			lines: []models.CartLine{
				line(100.00, 3),
				line(50.00, 2),
			},
			subtotal: 400.00, discount: 60.00, total: 340.00,
			quantity: 5, offerApplied: true,
		},
		{
			name:     "no offer below four units",
			lines:    []models.CartLine{line(100.00, 2)},
			subtotal: 200.00, discount: 0, total: 200.00,
			quantity: 2, offerApplied: false,
		},
		{
			name:     "threshold is inclusive",
			lines:    []models.CartLine{line(10.00, 4)},
			subtotal: 40.00, discount: 6.00, total: 34.00,
			quantity: 4, offerApplied: true,
		},
		{
			name:     "one unit short of the threshold",
			lines:    []models.CartLine{line(10.00, 3)},
			subtotal: 30.00, discount: 0, total: 30.00,
			quantity: 3, offerApplied: false,
		},
		{
			name:     "empty cart",
			lines:    nil,
			subtotal: 0, discount: 0, total: 0,
			quantity: 0, offerApplied: false,
		},
		{
			name: "quantities accumulate across lines",
			lines: []models.CartLine{
				line(180.00, 1),
				line(240.00, 1),
				line(350.00, 1),
				line(350.00, 1),
			},
			subtotal: 1120.00, discount: 168.00, total: 952.00,
			quantity: 4, offerApplied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ForCart(tt.lines)
			if !almostEqual(q.Subtotal, tt.subtotal) {
				t.Errorf("subtotal = %v, want %v", q.Subtotal, tt.subtotal)
			}
			if !almostEqual(q.Discount, tt.discount) {
				t.Errorf("discount = %v, want %v", q.Discount, tt.discount)
			}
			if !almostEqual(q.TotalPrice, tt.total) {
				t.Errorf("total = %v, want %v", q.TotalPrice, tt.total)
			}
			if q.TotalQuantity != tt.quantity {
				t.Errorf("quantity = %d, want %d", q.TotalQuantity, tt.quantity)
			}
			if q.OfferApplied != tt.offerApplied {
				t.Errorf("offerApplied = %v, want %v", q.OfferApplied, tt.offerApplied)
			}
		})
	}
}

func TestForCartInvariants(t *testing.T) {
	carts := [][]models.CartLine{
		nil,
		{line(99.99, 1)},
		{line(10, 2), line(20, 1)},
		{line(10, 2), line(20, 2)},
		{line(350, 7)},
	}
	for _, lines := range carts {
		q := ForCart(lines)
		if !almostEqual(q.TotalPrice, q.Subtotal-q.Discount) {
			t.Errorf("total %v != subtotal %v - discount %v", q.TotalPrice, q.Subtotal, q.Discount)
		}
		if q.OfferApplied != (q.TotalQuantity >= BulkThreshold) {
			t.Errorf("offerApplied=%v with quantity %d", q.OfferApplied, q.TotalQuantity)
		}
		if q.OfferApplied && !almostEqual(q.Discount, q.Subtotal*BulkDiscountRate) {
			t.Errorf("discount %v is not %v%% of subtotal %v", q.Discount, BulkDiscountRate*100, q.Subtotal)
		}
		if !q.OfferApplied && q.Discount != 0 {
			t.Errorf("discount %v without offer", q.Discount)
		}
	}
}
