package kernel

import (
	"errors"
	"fmt"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

// Currency identifies the currency of a Money amount.
type Currency string

// JPY is the only currency the catalog prices in.
const JPY Currency = "JPY"

// MoneyErrorCode is the machine-readable reason a Money operation failed.
type MoneyErrorCode string

const (
	// MoneyAmountNegative is reported when the amount is below zero.
	MoneyAmountNegative MoneyErrorCode = "AMOUNT_NEGATIVE"
	// MoneyAmountNotInteger is reported when the amount has a fractional part.
	MoneyAmountNotInteger MoneyErrorCode = "AMOUNT_NOT_INTEGER"
	// MoneyCurrencyMismatch is reported when two amounts in different currencies are combined.
	MoneyCurrencyMismatch MoneyErrorCode = "CURRENCY_MISMATCH"
)

func (c MoneyErrorCode) message() string {
	switch c {
	case MoneyAmountNegative:
		return "Money amount cannot be negative"
	case MoneyAmountNotInteger:
		return "Money amount must be an integer"
	case MoneyCurrencyMismatch:
		return "Currency mismatch"
	default:
		return string(c)
	}
}

// InvalidMoneyError is returned when a Money cannot be created or combined.
type InvalidMoneyError struct {
	Code    MoneyErrorCode
	Message string
}

func newInvalidMoneyError(code MoneyErrorCode) *InvalidMoneyError {
	return &InvalidMoneyError{Code: code, Message: code.message()}
}

func (e *InvalidMoneyError) Error() string {
	return e.Message
}

func (e *InvalidMoneyError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyJPY or MoneyJPYFromNumber constructors")

// Money is an immutable amount of money in whole currency units.
// The zero value of Money is invalid and will fail validation - use a
// constructor to create instances.
//
// Amounts produced by NewMoneyJPY are never negative. Subtract is the one
// operation allowed to produce a negative amount, which callers use to
// express shortfalls such as "remaining budget".
//
// Example:
//
//	price, err := kernel.NewMoneyJPY(1000)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: 1000 JPY
type Money struct {
	amount   int64
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoneyJPY creates a Money in JPY.
//
// Returns an *InvalidMoneyError with code MoneyAmountNegative if amount is below zero.
func NewMoneyJPY(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, newInvalidMoneyError(MoneyAmountNegative)
	}
	return newMoney(amount, JPY), nil
}

// MoneyJPYFromNumber creates a Money in JPY from an untyped number, such as a
// price decoded from JSON or YAML.
//
// Checks run in a fixed order:
//   - MoneyAmountNegative if amount is below zero
//   - MoneyAmountNotInteger if amount has a fractional part, is NaN or infinite,
//     or is 2^63 or more and so has no int64 representation
//
// Example:
//
//	price, err := kernel.MoneyJPYFromNumber(100.5)
//	var moneyErr *kernel.InvalidMoneyError
//	if errors.As(err, &moneyErr) {
//	    fmt.Println(moneyErr.Code) // Output: AMOUNT_NOT_INTEGER
//	}
func MoneyJPYFromNumber(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, newInvalidMoneyError(MoneyAmountNegative)
	}
	if !isWholeNumber(amount) || amount >= maxMoneyAmount {
		return Money{}, newInvalidMoneyError(MoneyAmountNotInteger)
	}
	return NewMoneyJPY(int64(amount))
}

// maxMoneyAmount is 2^63, the smallest whole float64 that int64 cannot hold.
const maxMoneyAmount = 1 << 63

func newMoney(amount int64, currency Currency) Money {
	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate reports ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in whole units of the currency.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of m and other.
// Both operands must be constructed and share a currency; otherwise the
// result is the zero Money and an error (MoneyCurrencyMismatch for differing
// currencies).
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertCompatible(other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount+other.amount, m.currency), nil
}

// Subtract returns m minus other. The result may be negative.
// The same operand checks as Add apply.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertCompatible(other); err != nil {
		return Money{}, err
	}
	return newMoney(m.amount-other.amount, m.currency), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual reports whether both amount and currency match.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String returns the amount followed by its currency, e.g. "1000 JPY".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

func (m Money) assertCompatible(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return newInvalidMoneyError(MoneyCurrencyMismatch)
	}
	return nil
}
