package kernel

import (
	"regexp"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

// PhoneNumberErrorCode is the machine-readable reason a PhoneNumber was rejected.
type PhoneNumberErrorCode string

const (
	PhoneNumberValueRequired PhoneNumberErrorCode = "VALUE_REQUIRED"
	PhoneNumberValueInvalid  PhoneNumberErrorCode = "VALUE_INVALID"
)

// InvalidPhoneNumberError is returned by NewPhoneNumber.
type InvalidPhoneNumberError struct {
	Code    PhoneNumberErrorCode
	Message string
}

func newInvalidPhoneNumberError(code PhoneNumberErrorCode) *InvalidPhoneNumberError {
	msg := "Phone number format is invalid"
	if code == PhoneNumberValueRequired {
		msg = "Phone number is required"
	}
	return &InvalidPhoneNumberError{Code: code, Message: msg}
}

func (e *InvalidPhoneNumberError) Error() string {
	return e.Message
}

func (e *InvalidPhoneNumberError) Unwrap() error {
	if e.Code == PhoneNumberValueRequired {
		return errs.ErrValueIsRequired
	}
	return errs.ErrValueIsInvalid
}

// ErrPhoneNumberIsNotConstructed is returned when a zero-value PhoneNumber is used.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"phone number must be created via NewPhoneNumber constructor")

var (
	phoneNumberSeparators = regexp.MustCompile(`[\s\v\x{FEFF}\p{Z}-]`)
	phoneNumberDigits     = regexp.MustCompile(`^\d{10,11}$`)
)

// PhoneNumber is an immutable phone number stored as 10 or 11 digits with
// every hyphen and whitespace removed, so "090-1234-5678" and "09012345678"
// are the same value.
type PhoneNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhoneNumber trims and normalizes value.
//
// Returns an *InvalidPhoneNumberError with:
//   - PhoneNumberValueRequired if value is blank
//   - PhoneNumberValueInvalid if the digits left after stripping separators
//     are not exactly 10 or 11 ASCII digits
//
// Example:
//
//	phone, _ := kernel.NewPhoneNumber(" 090-1234-5678 ")
//	fmt.Println(phone.Value()) // Output: 09012345678
func NewPhoneNumber(value string) (PhoneNumber, error) {
	trimmed := TrimSpace(value)
	if trimmed == "" {
		return PhoneNumber{}, newInvalidPhoneNumberError(PhoneNumberValueRequired)
	}

	normalized := phoneNumberSeparators.ReplaceAllString(trimmed, "")
	if !phoneNumberDigits.MatchString(normalized) {
		return PhoneNumber{}, newInvalidPhoneNumberError(PhoneNumberValueInvalid)
	}

	return PhoneNumber{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports ErrPhoneNumberIsNotConstructed for a zero-value PhoneNumber.
func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

// Value returns the normalized digits.
func (p PhoneNumber) Value() string {
	return p.value
}

// IsEqual compares normalized digits.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

func (p PhoneNumber) String() string {
	return p.value
}
