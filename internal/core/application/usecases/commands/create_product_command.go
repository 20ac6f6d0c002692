package commands

import (
	"errors"

	"catalog/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand carries the raw fields of a product as they arrive
// from outside the domain: a JSON or YAML record, a form, a CLI flag set.
// It holds primitives only; validation is left to the domain constructors so
// that every failure keeps its domain error code.
//
// Example:
//
//	cmd := NewCreateProductCommand("P-001", "Green tea", 1200, "Active")
//
//	handler := NewCreateProductCommandHandler(logger)
//	p, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("invalid product: %w", err)
//	}
type CreateProductCommand struct {
	productID string
	name      string
	price     float64
	status    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to build a product from raw fields.
func NewCreateProductCommand(productID, name string, price float64, status string) CreateProductCommand {
	return CreateProductCommand{
		productID: productID,
		name:      name,
		price:     price,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the raw product id.
func (c CreateProductCommand) ProductID() string {
	return c.productID
}

// Name returns the raw product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the raw price in yen.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Status returns the raw status tag.
func (c CreateProductCommand) Status() string {
	return c.status
}
