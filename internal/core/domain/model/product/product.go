package product

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Props is the raw input of NewProduct.
type Props struct {
	ProductID string
	Name      string
	Price     kernel.Money
	Status    Status
}

// Product is a purchasable item of the catalog. It is an entity: its identity
// is its product id, and IsEqual ignores every other attribute.
//
// Product follows these invariants:
//   - ProductID and Name are non-blank and stored trimmed
//   - Status is Active or Inactive
//   - Can only be created through NewProduct
//
// A Product never changes after construction. Activate and Deactivate return
// the product in the requested status, reusing the receiver when it is
// already there.
type Product struct {
	productID string
	name      string
	price     kernel.Money
	status    Status

	isConstructed bool
}

// NewProduct creates a Product from props.
//
// Checks run in a fixed order and stop at the first failure:
//   - ProductIDRequired if the trimmed product id is empty
//   - NameRequired if the trimmed name is empty
//   - StatusInvalid if the status is not exactly Active or Inactive
//
// The price is taken as given; it is already a validated kernel.Money.
//
// Example:
//
//	price, _ := kernel.NewMoneyJPY(1200)
//	p, err := product.NewProduct(product.Props{
//	    ProductID: "P-001",
//	    Name:      "Green tea",
//	    Price:     price,
//	    Status:    product.Active,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewProduct(props Props) (*Product, error) {
	productID := kernel.TrimSpace(props.ProductID)
	name := kernel.TrimSpace(props.Name)

	if productID == "" {
		return nil, newInvalidProductError(ProductIDRequired)
	}

	if name == "" {
		return nil, newInvalidProductError(NameRequired)
	}

	if !props.Status.IsValid() {
		return nil, newInvalidProductError(StatusInvalid)
	}

	return &Product{
		productID:     productID,
		name:          name,
		price:         props.Price,
		status:        props.Status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ProductID returns the product's identity.
func (p *Product) ProductID() string {
	return p.productID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Status returns the lifecycle status.
func (p *Product) Status() Status {
	return p.status
}

// IsActive reports whether the product is Active.
func (p *Product) IsActive() bool {
	return p.status == Active
}

// CanBePurchased reports whether the product may be added to an order.
// Today that is the same as IsActive.
func (p *Product) CanBePurchased() bool {
	return p.status == Active
}

// Activate returns the product in Active status.
func (p *Product) Activate() *Product {
	return p.withStatus(Active)
}

// Deactivate returns the product in Inactive status.
func (p *Product) Deactivate() *Product {
	return p.withStatus(Inactive)
}

// IsEqual compares two products by their product ids.
//
// Returns:
//   - true if both products have the same id
//   - false if other is nil or ids differ
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.productID == other.productID
}

func (p *Product) withStatus(status Status) *Product {
	if p.status == status {
		return p
	}

	next := *p
	next.status = status
	return &next
}
