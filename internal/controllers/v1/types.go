package v1

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendorledger/backend/internal/ledger"
	"github.com/vendorledger/backend/internal/models"
)

// Pagination contains information about the pagination for collection
// endpoint responses.
type Pagination struct {
	Count      int `json:"count" example:"25"`      // The number of records in this response
	Page       int `json:"page" example:"1"`        // The 1-based page returned
	PageSize   int `json:"pageSize" example:"50"`   // The maximum number of records per page
	TotalPages int `json:"totalPages" example:"4"`  // The total number of pages for the collection
	StartIndex int `json:"startIndex" example:"0"`  // Index of the first record of this page within the collection
	EndIndex   int `json:"endIndex" example:"25"`   // Index one past the last record of this page
}

// newPagination returns the API representation of a page.
func newPagination[T any](page ledger.Page[T], pageNumber, pageSize int) *Pagination {
	return &Pagination{
		Count:      len(page.Items),
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalPages: page.TotalPages,
		StartIndex: page.StartIndex,
		EndIndex:   page.EndIndex,
	}
}

// Vendor is the representation of a vendor identity in API v1.
type Vendor struct {
	models.Vendor
	DisplayName string `json:"displayName" example:"Acme Traders"` // The name shown in the catalog
}

func newVendor(model models.Vendor) Vendor {
	return Vendor{
		Vendor:      model,
		DisplayName: model.DisplayName(),
	}
}

// EntityRef is a normalized reference to an upstream entity.
type EntityRef struct {
	ID   string `json:"id" example:"68b2f..."`
	Name string `json:"name,omitempty" example:"Head Office"`
}

// Transaction is the representation of a transaction in API v1. The
// upstream's string-or-object references are always rendered as
// normalized entity references here.
type Transaction struct {
	ID              string                 `json:"id" example:"68b2f1"`
	AccountID       string                 `json:"accountId" example:"EXP1042"`
	Type            models.TransactionType `json:"transactionType" example:"expense"`
	Category        string                 `json:"category,omitempty" example:"raw_materials"`
	Amount          decimal.Decimal        `json:"amount" example:"500"`
	Date            time.Time              `json:"transactionDate" example:"2026-05-14T00:00:00Z"`
	PaymentStatus   models.PaymentStatus   `json:"paymentStatus" example:"pending"`
	Branch          *EntityRef             `json:"branch,omitempty"`
	VendorName      string                 `json:"vendorName,omitempty" example:"Acme Traders"`
	ReferenceNumber string                 `json:"referenceNumber,omitempty" example:"REF-99"`
	SupplierID      string                 `json:"supplierId,omitempty" example:"SUP-7"`
	RawMaterial     *EntityRef             `json:"rawMaterial,omitempty"`
	Order           *EntityRef             `json:"order,omitempty"`
}

func newTransaction(model models.Transaction) Transaction {
	t := Transaction{
		ID:              model.ID,
		AccountID:       model.AccountID,
		Type:            model.Type,
		Category:        model.Category,
		Amount:          model.Amount,
		Date:            model.Date,
		PaymentStatus:   model.PaymentStatus,
		VendorName:      model.VendorName,
		ReferenceNumber: model.ReferenceNumber,
		SupplierID:      model.SupplierID,
	}

	if model.Branch.Present() {
		t.Branch = &EntityRef{ID: model.Branch.ID, Name: model.Branch.Name}
	}

	if model.RawMaterial.Present() {
		t.RawMaterial = &EntityRef{ID: model.RawMaterial.ID, Name: model.RawMaterial.Name}
	}

	if model.Order.Present() {
		t.Order = &EntityRef{ID: model.Order.ID}
	}

	return t
}

// Ledger is the reconciled view for a single vendor.
type Ledger struct {
	Vendor       Vendor         `json:"vendor"`       // The vendor the ledger belongs to
	Balance      ledger.Balance `json:"balance"`      // Credit, debit and outstanding totals over all matched transactions
	Transactions []Transaction  `json:"transactions"` // The matched transactions for the requested page, newest first
}

type VendorListResponse struct {
	Data       []Vendor    `json:"data"`                                               // List of vendors
	Error      *string     `json:"error" example:"loading transactions: hard failure"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                         // Pagination information
}

type LedgerResponse struct {
	Data       *Ledger     `json:"data"`                                               // The reconciled ledger
	Error      *string     `json:"error" example:"loading transactions: hard failure"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                         // Pagination for the transaction list
}
