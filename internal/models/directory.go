package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// The types below mirror the three source collections the vendor
// catalog is built from, plus the branch directory. They are wire
// shapes owned by the upstream API; the catalog builder reduces them
// to Vendor identities.

// Supplier is a raw-material supplier record.
type Supplier struct {
	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// CourierPartner is a courier partner record.
type CourierPartner struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ExpenseVendor is an ad-hoc expense payee as reported by the unique
// vendor names endpoint. The reference number is optional and its
// absence is part of the identity.
type ExpenseVendor struct {
	VendorName          string          `json:"vendorName"`
	ReferenceNumber     string          `json:"referenceNumber"`
	TransactionCount    int             `json:"transactionCount"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	LastTransactionDate time.Time       `json:"lastTransactionDate"`
}

// Branch is a branch directory record.
type Branch struct {
	ID         string `json:"_id"`
	BranchName string `json:"branchName"`
	BranchCode string `json:"branchCode"`
	IsActive   bool   `json:"isActive"`
}
