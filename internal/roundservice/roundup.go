package roundservice

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-rounds/internal/domain"
)

var ten = decimal.NewFromInt(10)

// RoundAmount rounds the absolute value of amount up to the next multiple of
// ten and returns it as a debit: -23.50 gives -30, -20 stays -20.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs().Shift(-1).Ceil().Mul(ten).Neg()
}

// RoundUp keeps the debits of txs, in order, with their amount rounded.
//
// Credits and zero amounts are dropped. txs is left untouched.
func RoundUp(txs []domain.Transaction) []domain.Transaction {
	rounded := make([]domain.Transaction, 0, len(txs))

	for _, tx := range txs {
		if !tx.Amount.IsNegative() {
			continue
		}

		tx.Amount = RoundAmount(tx.Amount)
		rounded = append(rounded, tx)
	}

	return rounded
}
