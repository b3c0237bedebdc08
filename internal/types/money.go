// README: Common value objects shared across modules.
package types

import (
	"crypto/rand"
	"encoding/hex"
	"math"
)

type ID string

// NewID returns a 32-char hex identifier.
func NewID() ID {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return ID(hex.EncodeToString(b))
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// MoneyFromFloat rounds v to the nearest whole unit of the given currency.
// Negative or NaN values collapse to zero.
func MoneyFromFloat(v float64, currency string) Money {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	return Money{Amount: int64(math.Round(v)), Currency: currency}
}
