package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendorledger/backend/internal/ledger"
	"github.com/vendorledger/backend/internal/models"
)

func TestBuildCatalogMembership(t *testing.T) {
	t.Parallel()

	transactions := []models.Transaction{
		{Type: models.TypePurchase, SupplierID: "SUP-1"},
		{Type: models.TypeExpense, Order: models.OrderRef{ID: "o1", Courier: models.CourierRef{ID: "c1"}, Populated: true}},
		expenseTransaction("Acme Traders", ""),
	}

	suppliers := []models.Supplier{
		{SupplierID: "SUP-1", SupplierName: "GreenHerb Co"},
		{SupplierID: "SUP-2", SupplierName: "Idle Supplier"},
	}
	couriers := []models.CourierPartner{
		{ID: "c1", Name: "Swift Logistics"},
		{ID: "c2", Name: "Idle Courier"},
	}
	payees := []models.ExpenseVendor{
		{VendorName: "Acme Traders"},
		{VendorName: "Idle Vendor"},
	}

	viewer := models.GlobalViewer()
	catalog := ledger.BuildCatalog(transactions, suppliers, couriers, payees, viewer)
	assert.Len(t, catalog, 3)

	// Every cataloged vendor has at least one matching transaction, and
	// every candidate left out has none.
	for _, vendor := range catalog {
		assert.NotEmpty(t, ledger.MatchTransactions(vendor, transactions, viewer), vendor.DisplayName())
	}
	for _, name := range []string{"Idle Supplier", "Idle Courier", "Idle Vendor"} {
		for _, vendor := range catalog {
			assert.NotEqual(t, name, vendor.DisplayName())
		}
	}
}

func TestBuildCatalogOrdering(t *testing.T) {
	t.Parallel()

	transactions := []models.Transaction{
		expenseTransaction("zeta supplies", ""),
		expenseTransaction("Alpha Goods", ""),
		expenseTransaction("beta Mart", ""),
	}
	payees := []models.ExpenseVendor{
		{VendorName: "zeta supplies"},
		{VendorName: "Alpha Goods"},
		{VendorName: "beta Mart"},
	}

	catalog := ledger.BuildCatalog(transactions, nil, nil, payees, models.GlobalViewer())

	names := make([]string, 0, len(catalog))
	for _, vendor := range catalog {
		names = append(names, vendor.DisplayName())
	}
	assert.Equal(t, []string{"Alpha Goods", "beta Mart", "zeta supplies"}, names)
}

func TestBuildCatalogDeduplicates(t *testing.T) {
	t.Parallel()

	transactions := []models.Transaction{expenseTransaction("Acme Traders", "")}
	payees := []models.ExpenseVendor{
		{VendorName: "Acme Traders"},
		{VendorName: " ACME TRADERS "},
	}

	catalog := ledger.BuildCatalog(transactions, nil, nil, payees, models.GlobalViewer())
	assert.Len(t, catalog, 1)
}

func TestBuildCatalogSameNameDifferentType(t *testing.T) {
	t.Parallel()

	// A supplier and an expense vendor can share a display name. They
	// remain separate catalog entries.
	transactions := []models.Transaction{
		{Type: models.TypePurchase, SupplierID: "SUP-1"},
		expenseTransaction("GreenHerb Co", ""),
	}
	suppliers := []models.Supplier{{SupplierID: "SUP-1", SupplierName: "GreenHerb Co"}}
	payees := []models.ExpenseVendor{{VendorName: "GreenHerb Co"}}

	catalog := ledger.BuildCatalog(transactions, suppliers, nil, payees, models.GlobalViewer())
	assert.Len(t, catalog, 2)
}

func TestBuildCatalogBranchViewer(t *testing.T) {
	t.Parallel()

	branchTransaction := expenseTransaction("Acme Traders", "")
	branchTransaction.Branch = models.BranchRef{ID: "b1"}

	transactions := []models.Transaction{
		branchTransaction,
		expenseTransaction("Other Vendor", ""),
	}
	payees := []models.ExpenseVendor{
		{VendorName: "Acme Traders"},
		{VendorName: "Other Vendor"},
	}

	catalog := ledger.BuildCatalog(transactions, nil, nil, payees, models.BranchViewer("b1"))
	assert.Len(t, catalog, 1)
	assert.Equal(t, "Acme Traders", catalog[0].DisplayName())
}
