package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		divisor  int64
		expected int64
	}{
		{name: "Exact division", total: 1000, divisor: 2, expected: 500},
		{name: "Rounds up", total: 1000, divisor: 3, expected: 334},
		{name: "Single divisor", total: 999, divisor: 1, expected: 999},
		{name: "Zero total", total: 0, divisor: 5, expected: 0},
		{name: "One cent two ways", total: 1, divisor: 2, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CeilDiv(tt.total, tt.divisor))
		})
	}
}

func TestCeilingInvariant(t *testing.T) {
	// Sum of shares must never be less than the amount being split.
	tests := []struct {
		name    string
		total   int64
		weights []int
	}{
		{name: "Equal weights", total: 1000, weights: []int{1, 1, 1}},
		{name: "Mixed weights", total: 2199, weights: []int{1, 2, 3}},
		{name: "Prime total", total: 9973, weights: []int{2, 5}},
		{name: "Tiny total", total: 1, weights: []int{1, 1, 1, 1}},
		{name: "Zero total", total: 0, weights: []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var weightSum int64
			for _, w := range tt.weights {
				weightSum += int64(w)
			}
			perShare := CeilDiv(tt.total, weightSum)
			var sum int64
			for _, w := range tt.weights {
				sum += ShareAmount(perShare, w)
			}
			assert.GreaterOrEqual(t, sum, tt.total)
		})
	}
}

func TestOwed(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		total    int64
		subtotal int64
		expected int64
	}{
		// Receipt total 2000 over items [599, 1099, 499], subtotal 2197.
		{name: "Discounted receipt first item", price: 599, total: 2000, subtotal: 2197, expected: 546},
		{name: "Discounted receipt second item", price: 1099, total: 2000, subtotal: 2197, expected: 1001},
		{name: "Discounted receipt third item", price: 499, total: 2000, subtotal: 2197, expected: 455},
		{name: "Surcharge above one", price: 1000, total: 1100, subtotal: 1000, expected: 1100},
		{name: "No surcharge", price: 500, total: 1500, subtotal: 1500, expected: 500},
		{name: "Rounds up", price: 333, total: 1000, subtotal: 999, expected: 334},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Owed(tt.price, tt.total, tt.subtotal))
		})
	}
}
