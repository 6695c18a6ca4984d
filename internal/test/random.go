package test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/pkg/randompkg"
)

// RandomCredentials returns credentials with a valid random password.
func RandomCredentials() domain.Credentials {
	return domain.Credentials{
		Email:    randompkg.Email(),
		Password: randompkg.Password(12),
	}
}

// RandomTransaction returns a transaction with the given id and amount.
func RandomTransaction(id int64, amount string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Description: randompkg.String(12),
		Amount:      decimal.RequireFromString(amount),
		Date:        fmt.Sprintf("2016-%02d-%02d", randompkg.Intn(12)+1, randompkg.Intn(28)+1),
		ResourceURI: fmt.Sprintf("/v2/transactions/%d", id),
	}
}

// RandomDebits returns n debit transactions with ids starting at firstID.
func RandomDebits(firstID int64, n int) []domain.Transaction {
	txs := make([]domain.Transaction, 0, n)

	for i := 0; i < n; i++ {
		amount := randompkg.MoneyAmountBetween(-500, -0.01)
		txs = append(txs, RandomTransaction(firstID+int64(i), amount.String()))
	}

	return txs
}
