package kernel

import (
	"regexp"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

// EmailErrorCode is the machine-readable reason an Email was rejected.
type EmailErrorCode string

const (
	EmailValueRequired EmailErrorCode = "VALUE_REQUIRED"
	EmailValueInvalid  EmailErrorCode = "VALUE_INVALID"
)

// InvalidEmailError is returned by NewEmail.
type InvalidEmailError struct {
	Code    EmailErrorCode
	Message string
}

func newInvalidEmailError(code EmailErrorCode) *InvalidEmailError {
	msg := "Email format is invalid"
	if code == EmailValueRequired {
		msg = "Email is required"
	}
	return &InvalidEmailError{Code: code, Message: msg}
}

func (e *InvalidEmailError) Error() string {
	return e.Message
}

func (e *InvalidEmailError) Unwrap() error {
	if e.Code == EmailValueRequired {
		return errs.ErrValueIsRequired
	}
	return errs.ErrValueIsInvalid
}

// ErrEmailIsNotConstructed is returned when a zero-value Email is used.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// local@domain.tld where no part contains whitespace or '@'.
var emailPattern = regexp.MustCompile(`^[^\s\v\x{FEFF}\p{Z}@]+@[^\s\v\x{FEFF}\p{Z}@]+\.[^\s\v\x{FEFF}\p{Z}@]+$`)

// Email is an immutable, syntactically valid email address.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail trims value and validates it.
// Returns an *InvalidEmailError with EmailValueRequired for blank input and
// EmailValueInvalid when the trimmed text is not of the form local@domain.tld.
func NewEmail(value string) (Email, error) {
	normalized := TrimSpace(value)

	if normalized == "" {
		return Email{}, newInvalidEmailError(EmailValueRequired)
	}

	if !emailPattern.MatchString(normalized) {
		return Email{}, newInvalidEmailError(EmailValueInvalid)
	}

	return Email{value: normalized, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports ErrEmailIsNotConstructed for a zero-value Email.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Value returns the trimmed address.
func (e Email) Value() string {
	return e.value
}

// IsEqual compares the normalized addresses exactly.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
