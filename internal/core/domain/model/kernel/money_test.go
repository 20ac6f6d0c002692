package kernel_test

import (
	"math"
	"testing"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMoneyError(t *testing.T, err error, code kernel.MoneyErrorCode, message string) {
	t.Helper()

	var moneyErr *kernel.InvalidMoneyError
	require.ErrorAs(t, err, &moneyErr)
	assert.Equal(t, code, moneyErr.Code)
	assert.Equal(t, message, moneyErr.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func mustJPY(t *testing.T, amount int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoneyJPY(amount)
	require.NoError(t, err)
	return m
}

func TestNewMoneyJPY(t *testing.T) {
	t.Run("should create money with a valid amount", func(t *testing.T) {
		m, err := kernel.NewMoneyJPY(1000)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(1000), m.Amount())
		assert.Equal(t, kernel.JPY, m.Currency())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoneyJPY(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		m, err := kernel.NewMoneyJPY(-100)

		requireMoneyError(t, err, kernel.MoneyAmountNegative, "Money amount cannot be negative")
		assert.Equal(t, kernel.Money{}, m)
	})
}

func TestMoneyJPYFromNumber(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		code    kernel.MoneyErrorCode
		message string
	}{
		{"fractional amount", 100.5, kernel.MoneyAmountNotInteger, "Money amount must be an integer"},
		{"negative amount", -100, kernel.MoneyAmountNegative, "Money amount cannot be negative"},
		{"negative is checked before integer", -0.5, kernel.MoneyAmountNegative, "Money amount cannot be negative"},
		{"NaN", math.NaN(), kernel.MoneyAmountNotInteger, "Money amount must be an integer"},
		{"positive infinity", math.Inf(1), kernel.MoneyAmountNotInteger, "Money amount must be an integer"},
		{"beyond int64", 1 << 63, kernel.MoneyAmountNotInteger, "Money amount must be an integer"},
		{"far beyond int64", 1e20, kernel.MoneyAmountNotInteger, "Money amount must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.MoneyJPYFromNumber(tt.amount)
			requireMoneyError(t, err, tt.code, tt.message)
		})
	}

	t.Run("should accept whole numbers", func(t *testing.T) {
		for _, amount := range []int64{0, 1, 1000, 9_007_199_254_740_991, 9_007_199_254_740_992, 1 << 60, 1 << 62} {
			m, err := kernel.MoneyJPYFromNumber(float64(amount))

			require.NoError(t, err)
			assert.Equal(t, amount, m.Amount())
			assert.Equal(t, kernel.JPY, m.Currency())
		}
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		result, err := mustJPY(t, 1000).Add(mustJPY(t, 500))

		require.NoError(t, err)
		assert.Equal(t, int64(1500), result.Amount())
		assert.Equal(t, kernel.JPY, result.Currency())
	})

	t.Run("should leave the operands unchanged", func(t *testing.T) {
		a := mustJPY(t, 1000)
		b := mustJPY(t, 500)

		_, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), a.Amount())
		assert.Equal(t, int64(500), b.Amount())
	})

	t.Run("should reject an unconstructed operand", func(t *testing.T) {
		_, err := mustJPY(t, 1000).Add(kernel.Money{})

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("should subtract two amounts", func(t *testing.T) {
		result, err := mustJPY(t, 1000).Subtract(mustJPY(t, 300))

		require.NoError(t, err)
		assert.Equal(t, int64(700), result.Amount())
	})

	t.Run("should allow a negative result", func(t *testing.T) {
		result, err := mustJPY(t, 500).Subtract(mustJPY(t, 1000))

		require.NoError(t, err)
		require.NoError(t, result.Validate())
		assert.Equal(t, int64(-500), result.Amount())
	})

	t.Run("should be exact integer arithmetic", func(t *testing.T) {
		for _, pair := range [][2]int64{{0, 0}, {1, 2}, {99, 99}, {123456, 654321}} {
			result, err := mustJPY(t, pair[0]).Subtract(mustJPY(t, pair[1]))

			require.NoError(t, err)
			assert.Equal(t, pair[0]-pair[1], result.Amount())
		}
	})

	t.Run("should reject an unconstructed receiver", func(t *testing.T) {
		_, err := kernel.Money{}.Subtract(mustJPY(t, 1))

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_IsZero(t *testing.T) {
	assert.True(t, mustJPY(t, 0).IsZero())
	assert.False(t, mustJPY(t, 100).IsZero())
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should be equal for the same amount", func(t *testing.T) {
		assert.True(t, mustJPY(t, 1000).IsEqual(mustJPY(t, 1000)))
	})

	t.Run("should differ for different amounts", func(t *testing.T) {
		assert.False(t, mustJPY(t, 1000).IsEqual(mustJPY(t, 500)))
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1000 JPY", mustJPY(t, 1000).String())
}

func TestMoney_Validate(t *testing.T) {
	var m kernel.Money

	err := m.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
}
