package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the financial effect of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypePurchase TransactionType = "purchase"
)

// Outflow reports whether the transaction type represents money
// leaving the business.
func (t TransactionType) Outflow() bool {
	return t == TypeExpense || t == TypePurchase
}

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

// Settled reports whether the transaction no longer contributes to the
// outstanding balance.
func (s PaymentStatus) Settled() bool {
	return s == StatusCompleted
}

// LeadIncomePrefix marks account codes of manually created lead income
// entries. Entries with this prefix and no linked order never belong to
// a vendor ledger.
const LeadIncomePrefix = "PI"

// Transaction is a single account entry as served by the upstream API.
//
// Identity hints (VendorName, SupplierID, ReferenceNumber and the
// embedded references) are populated inconsistently depending on how
// the entry was created, so all of them are optional.
type Transaction struct {
	ID              string          `json:"_id"`
	AccountID       string          `json:"accountId"`
	Type            TransactionType `json:"transactionType"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"transactionDate"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Branch          BranchRef       `json:"branchId"`
	VendorName      string          `json:"vendorName"`
	ReferenceNumber string          `json:"referenceNumber"`
	SupplierID      string          `json:"supplierId"`
	RawMaterial     MaterialRef     `json:"rawMaterialId"`
	Order           OrderRef        `json:"orderId"`
}

// IsLeadIncome reports whether the transaction is a manually entered
// lead income: the reserved account code prefix combined with the
// absence of a linked order.
func (t Transaction) IsLeadIncome() bool {
	return strings.HasPrefix(t.AccountID, LeadIncomePrefix) && !t.Order.Present()
}

// HasVendorHint reports whether the transaction carries any field that
// could identify a payable counterparty.
func (t Transaction) HasVendorHint() bool {
	if strings.TrimSpace(t.VendorName) != "" || strings.TrimSpace(t.SupplierID) != "" {
		return true
	}
	if t.RawMaterial.Populated && (t.RawMaterial.SupplierID != "" || t.RawMaterial.SupplierName != "") {
		return true
	}
	return t.Order.Populated && t.Order.Courier.Present()
}
