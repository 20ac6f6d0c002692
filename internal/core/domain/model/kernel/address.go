package kernel

import (
	"regexp"
	"strings"

	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

// AddressErrorCode is the machine-readable reason an Address was rejected.
type AddressErrorCode string

const (
	AddressPostalCodeRequired AddressErrorCode = "POSTAL_CODE_REQUIRED"
	AddressPostalCodeInvalid  AddressErrorCode = "POSTAL_CODE_INVALID"
	AddressPrefectureRequired AddressErrorCode = "PREFECTURE_REQUIRED"
	AddressCityRequired       AddressErrorCode = "CITY_REQUIRED"
	AddressLine1Required      AddressErrorCode = "LINE1_REQUIRED"
)

var addressErrorMessages = map[AddressErrorCode]string{
	AddressPostalCodeRequired: "Postal code is required",
	AddressPostalCodeInvalid:  "Postal code is invalid",
	AddressPrefectureRequired: "Prefecture is required",
	AddressCityRequired:       "City is required",
	AddressLine1Required:      "Line1 is required",
}

// InvalidAddressError is returned by NewAddress.
type InvalidAddressError struct {
	Code    AddressErrorCode
	Message string
}

func newInvalidAddressError(code AddressErrorCode) *InvalidAddressError {
	return &InvalidAddressError{Code: code, Message: addressErrorMessages[code]}
}

func (e *InvalidAddressError) Error() string {
	return e.Message
}

func (e *InvalidAddressError) Unwrap() error {
	if e.Code == AddressPostalCodeInvalid {
		return errs.ErrValueIsInvalid
	}
	return errs.ErrValueIsRequired
}

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Three digits, an optional hyphen, four digits.
var postalCodePattern = regexp.MustCompile(`^\d{3}-?\d{4}$`)

// AddressProps is the raw input of NewAddress. Line2 is optional; nil means
// the address has no second line.
type AddressProps struct {
	PostalCode string
	Prefecture string
	City       string
	Line1      string
	Line2      *string
}

// Address is an immutable postal address.
//
// Invariants:
//   - every field is stored trimmed
//   - PostalCode matches NNN-NNNN or NNNNNNN and is kept as given (no reformatting)
//   - Prefecture, City and Line1 are non-empty
//   - Line2 keeps its presence: an address built without Line2 never reports an empty one
type Address struct {
	postalCode string
	prefecture string
	city       string
	line1      string
	line2      string
	hasLine2   bool
	guard      guard.ConstructorGuard
}

// NewAddress trims every field and validates them in a fixed order, stopping
// at the first failure: postal code (required, then format), prefecture, city,
// line1. Failures are reported as *InvalidAddressError.
//
// Example:
//
//	addr, err := kernel.NewAddress(kernel.AddressProps{
//	    PostalCode: "100-0001",
//	    Prefecture: "東京都",
//	    City:       "千代田区",
//	    Line1:      "千代田1-1",
//	})
func NewAddress(props AddressProps) (Address, error) {
	addr := Address{
		postalCode: TrimSpace(props.PostalCode),
		prefecture: TrimSpace(props.Prefecture),
		city:       TrimSpace(props.City),
		line1:      TrimSpace(props.Line1),
		guard:      guard.NewConstructorGuard(),
	}
	if props.Line2 != nil {
		addr.line2 = TrimSpace(*props.Line2)
		addr.hasLine2 = true
	}

	switch {
	case addr.postalCode == "":
		return Address{}, newInvalidAddressError(AddressPostalCodeRequired)
	case !postalCodePattern.MatchString(addr.postalCode):
		return Address{}, newInvalidAddressError(AddressPostalCodeInvalid)
	case addr.prefecture == "":
		return Address{}, newInvalidAddressError(AddressPrefectureRequired)
	case addr.city == "":
		return Address{}, newInvalidAddressError(AddressCityRequired)
	case addr.line1 == "":
		return Address{}, newInvalidAddressError(AddressLine1Required)
	}

	return addr, nil
}

// Validate reports ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// PostalCode returns the postal code, with or without its hyphen as given.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Prefecture returns the prefecture.
func (a Address) Prefecture() string {
	return a.prefecture
}

// City returns the city, ward or town.
func (a Address) City() string {
	return a.city
}

// Line1 returns the street line.
func (a Address) Line1() string {
	return a.line1
}

// Line2 returns the optional second line and whether it was provided.
func (a Address) Line2() (string, bool) {
	return a.line2, a.hasLine2
}

// IsEqual compares all five fields, including whether Line2 is present.
func (a Address) IsEqual(other Address) bool {
	return a.postalCode == other.postalCode &&
		a.prefecture == other.prefecture &&
		a.city == other.city &&
		a.line1 == other.line1 &&
		a.hasLine2 == other.hasLine2 &&
		a.line2 == other.line2
}

// String returns the address on one line, fields separated by spaces.
func (a Address) String() string {
	parts := []string{a.postalCode, a.prefecture, a.city, a.line1}
	if a.hasLine2 && a.line2 != "" {
		parts = append(parts, a.line2)
	}
	return strings.Join(parts, " ")
}
