package cmd

import (
	"context"
	"errors"
	"io"

	"catalog/internal/adapters/in/catalogfile"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/product"
)

// RecordFailure describes one catalog record that could not become a Product.
type RecordFailure struct {
	// Index is the zero-based position of the record in the document.
	Index     int
	ProductID string
	Code      string
	Err       error
}

// CheckReport summarizes a catalog check.
type CheckReport struct {
	Valid    int
	Failures []RecordFailure
}

// OK reports whether every record was valid.
func (r CheckReport) OK() bool {
	return len(r.Failures) == 0
}

// CheckCatalog decodes a catalog document from r and validates every record.
// Only a malformed document is returned as an error; invalid records are
// collected in the report.
func (c *CompositionRoot) CheckCatalog(ctx context.Context, r io.Reader) (CheckReport, error) {
	records, err := catalogfile.Decode(r)
	if err != nil {
		return CheckReport{}, err
	}

	handler := c.CreateCreateProductCommandHandler()

	var report CheckReport
	for i, record := range records {
		cmd, err := record.ToCommand()
		if err == nil {
			_, err = handler.Handle(ctx, cmd)
		}
		if err != nil {
			report.Failures = append(report.Failures, RecordFailure{
				Index:     i,
				ProductID: record.ProductID,
				Code:      ErrorCode(err),
				Err:       err,
			})
			continue
		}
		report.Valid++
	}

	return report, nil
}

// ErrorCode returns the machine-readable code carried by a domain error, or
// an empty string when err carries none.
func ErrorCode(err error) string {
	var (
		moneyErr    *kernel.InvalidMoneyError
		emailErr    *kernel.InvalidEmailError
		phoneErr    *kernel.InvalidPhoneNumberError
		addressErr  *kernel.InvalidAddressError
		quantityErr *kernel.InvalidItemQuantityError
		productErr  *product.InvalidProductError
	)

	switch {
	case errors.As(err, &moneyErr):
		return string(moneyErr.Code)
	case errors.As(err, &emailErr):
		return string(emailErr.Code)
	case errors.As(err, &phoneErr):
		return string(phoneErr.Code)
	case errors.As(err, &addressErr):
		return string(addressErr.Code)
	case errors.As(err, &quantityErr):
		return string(quantityErr.Code)
	case errors.As(err, &productErr):
		return string(productErr.Code)
	default:
		return ""
	}
}
