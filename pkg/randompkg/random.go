// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	// symbols needing query escaping are included on purpose
	passwordAlphabet = alphabet + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#%&+@ "
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

func fromAlphabet(chars string, n int) string {
	var sb strings.Builder

	k := len(chars)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(chars[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random lower case string of length n.
func String(n int) string {
	return fromAlphabet(alphabet, n)
}

// Password generates a random password of length n.
func Password(n int) string {
	return fromAlphabet(passwordAlphabet, n)
}

// MoneyAmountBetween generates a random amount of money with cent precision
// between min and max, both inclusive.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	minCents := decimal.NewFromFloat(min).Shift(2).Ceil().IntPart()
	maxCents := decimal.NewFromFloat(max).Shift(2).Floor().IntPart()

	return decimal.New(minCents+Intn(int(maxCents-minCents+1)), -2)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@email.com", String(10))
}
