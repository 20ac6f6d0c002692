package commands

import (
	"errors"
	"fmt"

	"catalog/internal/core/domain/model/product"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var ErrChangeProductStatusCommandIsNotConstructed = errors.New(
	"ChangeProductStatusCommand must be created via NewChangeProductStatusCommand constructor",
)

// ChangeProductStatusCommand asks for a product to be moved to a target status.
type ChangeProductStatusCommand struct { //nolint:recvcheck //using for validation
	product *product.Product
	target  product.Status

	guard guard.ConstructorGuard
}

// NewChangeProductStatusCommand validates that p was built by product.NewProduct
// and that target is a defined status.
func NewChangeProductStatusCommand(p *product.Product, target product.Status) (ChangeProductStatusCommand, error) {
	cmd := ChangeProductStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProduct(p),
		cmd.setTarget(target),
	); err != nil {
		return ChangeProductStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductStatusCommandIsNotConstructed)
}

// Product returns the product to transition.
func (c ChangeProductStatusCommand) Product() *product.Product {
	return c.product
}

// Target returns the requested status.
func (c ChangeProductStatusCommand) Target() product.Status {
	return c.target
}

func (c *ChangeProductStatusCommand) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.product = p
	return nil
}

func (c *ChangeProductStatusCommand) setTarget(target product.Status) error {
	if !target.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("target status", fmt.Errorf("%q is not a product status", target))
	}

	c.target = target
	return nil
}
