package roundservice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/internal/test"
	"github.com/go-petr/pet-rounds/pkg/randompkg"
)

func TestRoundAmount(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{amount: "-23.50", want: "-30"},
		{amount: "-20.00", want: "-20"},
		{amount: "-20", want: "-20"},
		{amount: "-0.01", want: "-10"},
		{amount: "-9.99", want: "-10"},
		{amount: "-10.01", want: "-20"},
		{amount: "-1234.5", want: "-1240"},
		{amount: "-30", want: "-30"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.amount, func(t *testing.T) {
			t.Parallel()

			got := RoundAmount(decimal.RequireFromString(tc.amount))
			want := decimal.RequireFromString(tc.want)
			require.Truef(t, want.Equal(got), "RoundAmount(%s) = %s, want %s", tc.amount, got, want)
		})
	}
}

func TestRoundAmountIdempotent(t *testing.T) {
	for i := 0; i < 100; i++ {
		amount := randompkg.MoneyAmountBetween(-10_000, -0.01)

		once := RoundAmount(amount)
		twice := RoundAmount(once)

		require.Truef(t, once.Equal(twice), "RoundAmount(%s) = %s, then %s", amount, once, twice)
		require.True(t, once.Mod(ten).IsZero())
		require.True(t, once.LessThanOrEqual(amount))
		require.True(t, amount.Sub(once).LessThan(ten))
	}
}

func TestRoundUp(t *testing.T) {
	txs := []domain.Transaction{
		test.RandomTransaction(1, "-23.50"),
		test.RandomTransaction(2, "100"),
		test.RandomTransaction(3, "0"),
		test.RandomTransaction(4, "-20"),
		test.RandomTransaction(5, "0.01"),
		test.RandomTransaction(6, "-0.50"),
	}

	original := make([]domain.Transaction, len(txs))
	copy(original, txs)

	got := RoundUp(txs)

	want := []domain.Transaction{txs[0], txs[3], txs[5]}
	want[0].Amount = decimal.NewFromInt(-30)
	want[1].Amount = decimal.NewFromInt(-20)
	want[2].Amount = decimal.NewFromInt(-10)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RoundUp() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(original, txs); diff != "" {
		t.Errorf("RoundUp() modified its input (-want +got):\n%s", diff)
	}
}

func TestRoundUpEmpty(t *testing.T) {
	require.NotNil(t, RoundUp(nil))
	require.Empty(t, RoundUp(nil))

	credits := []domain.Transaction{test.RandomTransaction(1, "12.30")}
	require.Empty(t, RoundUp(credits))
}
