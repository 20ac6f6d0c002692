package kernel

import (
	"fmt"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

const (
	// ItemQuantityMin is the smallest quantity of one item a line can hold.
	ItemQuantityMin = 1
	// ItemQuantityMax is the largest quantity of one item a line can hold.
	ItemQuantityMax = 99
)

// ItemQuantityErrorCode is the machine-readable reason an ItemQuantity operation failed.
type ItemQuantityErrorCode string

const (
	ItemQuantityValueNotInteger  ItemQuantityErrorCode = "VALUE_NOT_INTEGER"
	ItemQuantityValueOutOfRange  ItemQuantityErrorCode = "VALUE_OUT_OF_RANGE"
	ItemQuantityAddendNotInteger ItemQuantityErrorCode = "ADDEND_NOT_INTEGER"
)

// InvalidItemQuantityError is returned when a quantity cannot be created or
// when arithmetic would leave the permitted range.
type InvalidItemQuantityError struct {
	Code    ItemQuantityErrorCode
	Message string
}

func newInvalidItemQuantityError(code ItemQuantityErrorCode) *InvalidItemQuantityError {
	var msg string
	switch code {
	case ItemQuantityValueNotInteger:
		msg = "ItemQuantity must be an integer"
	case ItemQuantityValueOutOfRange:
		msg = fmt.Sprintf("ItemQuantity must be between %d and %d", ItemQuantityMin, ItemQuantityMax)
	case ItemQuantityAddendNotInteger:
		msg = "Addend must be an integer"
	}
	return &InvalidItemQuantityError{Code: code, Message: msg}
}

func (e *InvalidItemQuantityError) Error() string {
	return e.Message
}

func (e *InvalidItemQuantityError) Unwrap() error {
	if e.Code == ItemQuantityValueOutOfRange {
		return errs.ErrValueIsOutOfRange
	}
	return errs.ErrValueIsInvalid
}

// ErrItemQuantityIsNotConstructed is returned when a zero-value ItemQuantity is used.
var ErrItemQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"item quantity must be created via NewItemQuantity or ItemQuantityFromNumber constructors")

// ItemQuantity is an immutable quantity in [ItemQuantityMin..ItemQuantityMax].
// Increment, Decrement and Add return new quantities and fail with
// ItemQuantityValueOutOfRange instead of leaving the range.
type ItemQuantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewItemQuantity returns an *InvalidItemQuantityError with
// ItemQuantityValueOutOfRange unless value is within the bounds.
func NewItemQuantity(value int) (ItemQuantity, error) {
	if value < ItemQuantityMin || value > ItemQuantityMax {
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityValueOutOfRange)
	}
	return ItemQuantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ItemQuantityFromNumber creates a quantity from an untyped number.
// A fractional, NaN or infinite value is ItemQuantityValueNotInteger; that
// check runs before the range check. Any other whole number, however large,
// is ItemQuantityValueOutOfRange when outside the bounds.
func ItemQuantityFromNumber(value float64) (ItemQuantity, error) {
	if !isWholeNumber(value) {
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityValueNotInteger)
	}
	if value < ItemQuantityMin || value > ItemQuantityMax {
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityValueOutOfRange)
	}
	return NewItemQuantity(int(value))
}

// Validate reports ErrItemQuantityIsNotConstructed for a zero-value ItemQuantity.
func (q ItemQuantity) Validate() error {
	return q.guard.Validate(ErrItemQuantityIsNotConstructed)
}

// Value returns the quantity.
func (q ItemQuantity) Value() int {
	return q.value
}

// Increment returns the quantity plus one.
func (q ItemQuantity) Increment() (ItemQuantity, error) {
	return q.Add(1)
}

// Decrement returns the quantity minus one.
func (q ItemQuantity) Decrement() (ItemQuantity, error) {
	return q.Add(-1)
}

// Add returns the quantity plus n. Negative n is allowed as long as the
// result stays in range.
func (q ItemQuantity) Add(n int) (ItemQuantity, error) {
	if err := q.Validate(); err != nil {
		return ItemQuantity{}, err
	}
	// Bounding n first keeps q.value+n from overflowing.
	if n > ItemQuantityMax || n < -ItemQuantityMax {
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityValueOutOfRange)
	}
	return NewItemQuantity(q.value + n)
}

// AddNumber is Add for an untyped addend. A fractional, NaN or infinite n
// fails with ItemQuantityAddendNotInteger before any range check.
func (q ItemQuantity) AddNumber(n float64) (ItemQuantity, error) {
	if !isWholeNumber(n) {
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityAddendNotInteger)
	}
	if n > ItemQuantityMax || n < -ItemQuantityMax {
		if err := q.Validate(); err != nil {
			return ItemQuantity{}, err
		}
		return ItemQuantity{}, newInvalidItemQuantityError(ItemQuantityValueOutOfRange)
	}
	return q.Add(int(n))
}

// IsEqual compares quantities by value.
func (q ItemQuantity) IsEqual(other ItemQuantity) bool {
	return q.value == other.value
}

func (q ItemQuantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
