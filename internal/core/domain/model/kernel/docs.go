// Package kernel provides the shared value objects of the catalog domain.
// They are the building blocks that the catalog and ordering contexts compose
// into entities.
//
// The package includes:
//   - Money: a non-negative integer amount in a fixed currency (JPY)
//   - Email: a syntactically valid email address
//   - PhoneNumber: a phone number normalized to 10 or 11 digits
//   - Address: a postal address with a format-checked postal code
//   - ItemQuantity: an integer quantity bounded to [ItemQuantityMin..ItemQuantityMax]
//
// Every value object is immutable and can only be obtained from its
// constructor, which trims and normalizes raw input before validating it.
// Validation stops at the first failing check and reports it as a typed error
// carrying a machine-readable code and a fixed message, e.g. *InvalidMoneyError
// with Code MoneyAmountNegative. Each typed error also unwraps to one of the
// errs categories (errs.ErrValueIsRequired, errs.ErrValueIsInvalid,
// errs.ErrValueIsOutOfRange).
//
// Operations that "change" a value object return a new instance and leave the
// receiver untouched, so values are safe to share across goroutines.
package kernel
