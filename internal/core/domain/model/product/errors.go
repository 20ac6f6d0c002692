package product

import "catalog/internal/pkg/errs"

// ErrorCode is the machine-readable reason a Product was rejected.
type ErrorCode string

const (
	ProductIDRequired ErrorCode = "PRODUCT_ID_REQUIRED"
	NameRequired      ErrorCode = "NAME_REQUIRED"
	StatusInvalid     ErrorCode = "STATUS_INVALID"
)

var errorMessages = map[ErrorCode]string{
	ProductIDRequired: "Product id is required",
	NameRequired:      "Product name is required",
	StatusInvalid:     "Product status must be Active or Inactive",
}

// InvalidProductError is returned by NewProduct.
type InvalidProductError struct {
	Code    ErrorCode
	Message string
}

func newInvalidProductError(code ErrorCode) *InvalidProductError {
	return &InvalidProductError{Code: code, Message: errorMessages[code]}
}

func (e *InvalidProductError) Error() string {
	return e.Message
}

func (e *InvalidProductError) Unwrap() error {
	if e.Code == StatusInvalid {
		return errs.ErrValueIsInvalid
	}
	return errs.ErrValueIsRequired
}
