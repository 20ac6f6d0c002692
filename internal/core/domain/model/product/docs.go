// Package product provides the Product entity of the catalog.
//
// The package includes:
//   - Product: an identity-bearing entity priced in kernel.Money
//   - Status: the Active/Inactive lifecycle of a product
//
// Key business rules:
//   - A product must have a non-blank id and name; both are stored trimmed
//   - Status must be exactly Active or Inactive
//   - Two products are the same product when their ids match, whatever their
//     other attributes
//   - Activate and Deactivate never modify a product; they return the product
//     in the target status
package product
