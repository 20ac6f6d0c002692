package product

// Status is the lifecycle state of a Product.
//
//	Active <──> Inactive
type Status string

const (
	// Active products are listed and can be purchased.
	Active Status = "Active"
	// Inactive products are kept in the catalog but cannot be purchased.
	Inactive Status = "Inactive"
)

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	switch s {
	case Active, Inactive:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
