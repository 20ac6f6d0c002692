// Package catalogfile reads product records from a YAML catalog document.
//
// A catalog document looks like:
//
//	products:
//	  - product_id: P-001
//	    name: Green tea
//	    price: 1200
//	    status: Active
//
// Decoding only checks the document shape. Field values are passed through
// untouched so that the domain constructors report them with their own codes.
package catalogfile

import (
	"errors"
	"fmt"
	"io"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Record is one product entry of a catalog document.
type Record struct {
	ProductID string   `yaml:"product_id"`
	Name      string   `yaml:"name"`
	Price     *float64 `yaml:"price"`
	Status    string   `yaml:"status"`
}

type document struct {
	Products []Record `yaml:"products"`
}

// Decode reads a catalog document from r. Unknown keys are rejected. An empty
// document yields no records.
func Decode(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("catalog document", err)
	}

	if doc.Products == nil {
		return []Record{}, nil
	}
	return doc.Products, nil
}

// ToCommand converts the record into a CreateProductCommand. A record without
// a price is rejected here because a missing number cannot be told apart from
// zero once it reaches the domain.
func (r Record) ToCommand() (commands.CreateProductCommand, error) {
	if r.Price == nil {
		return commands.CreateProductCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"price", fmt.Errorf("product %q has no price", r.ProductID))
	}
	return commands.NewCreateProductCommand(r.ProductID, r.Name, *r.Price, r.Status), nil
}
