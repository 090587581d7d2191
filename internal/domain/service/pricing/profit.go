package pricing

import "github.com/shopspring/decimal"

const profitPlaces = 2

// Profit is price minus purchase price rounded to cents.
func Profit(price, purchasePrice float64) float64 {
	profit, _ := decimal.NewFromFloat(price).
		Sub(decimal.NewFromFloat(purchasePrice)).
		Round(profitPlaces).
		Float64()

	return profit
}
