package models

// VendorType discriminates the three payable counterparty classes the
// ledger tracks. Customers are not a vendor type.
type VendorType string

const (
	VendorSupplier VendorType = "supplier"
	VendorCourier  VendorType = "courier"
	VendorExpense  VendorType = "vendor"
)

// Vendor is a derived, ephemeral identity used for ledger grouping.
// It is rebuilt from the transaction scope on every catalog load and
// never persisted.
//
// Which fields are meaningful depends on Type:
//   - supplier: ID (supplierId) and Name, either may establish a match
//   - courier: ID only, exact identity
//   - vendor (ad-hoc expense payee): Name and ReferenceNumber compound key
type Vendor struct {
	Type            VendorType `json:"type"`
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	ReferenceNumber string     `json:"referenceNumber,omitempty"`
}

// NewSupplier returns a supplier identity.
func NewSupplier(id, name string) Vendor {
	return Vendor{Type: VendorSupplier, ID: id, Name: name}
}

// NewCourier returns a courier partner identity.
func NewCourier(id, name string) Vendor {
	return Vendor{Type: VendorCourier, ID: id, Name: name}
}

// NewExpenseVendor returns an ad-hoc expense payee identity. An empty
// reference number is part of the key, not a wildcard.
func NewExpenseVendor(name, referenceNumber string) Vendor {
	return Vendor{Type: VendorExpense, Name: name, ReferenceNumber: referenceNumber}
}

// DisplayName returns the name shown in the catalog, falling back to
// the id for couriers without a resolved name.
func (v Vendor) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}
