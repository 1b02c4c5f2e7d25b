package upstream_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorledger/backend/internal/fixture"
	"github.com/vendorledger/backend/internal/models"
	"github.com/vendorledger/backend/internal/upstream"
	"github.com/vendorledger/backend/test"
)

func client(t *testing.T) (*fixture.Server, *upstream.Client) {
	t.Helper()

	server, baseURL := test.UpstreamFixture(t)
	return server, upstream.New(upstream.Config{BaseURL: baseURL})
}

func seedAccounts(t *testing.T, server *fixture.Server, accounts ...fixture.Account) {
	t.Helper()

	for _, account := range accounts {
		require.NoError(t, server.DB.Create(&account).Error)
	}
}

func TestAllTransactionsMultiPage(t *testing.T) {
	t.Parallel()

	server, c := client(t)
	server.MaxLimit = 2

	for i := 0; i < 5; i++ {
		seedAccounts(t, server, fixture.Account{
			ID:        fmt.Sprintf("t%d", i),
			AccountID: fmt.Sprintf("EXP10%02d", i),
			Type:      "expense",
			Amount:    decimal.NewFromInt(10),
			Date:      time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}

	transactions, err := c.AllTransactions(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Len(t, transactions, 5)

	// A repeated fetch over unchanged data returns the same set.
	again, err := c.AllTransactions(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Equal(t, transactions, again)
}

func TestAllTransactionsAbortDiscardsPartial(t *testing.T) {
	t.Parallel()

	server, c := client(t)
	server.MaxLimit = 2
	server.FailOnPage = 2

	for i := 0; i < 5; i++ {
		seedAccounts(t, server, fixture.Account{ID: fmt.Sprintf("t%d", i), Type: "expense"})
	}

	transactions, err := c.AllTransactions(context.Background(), models.Scope{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")

	// The page fetched before the failure is not returned.
	assert.Nil(t, transactions)
}

func TestAllTransactionsPageCapSoftStop(t *testing.T) {
	t.Parallel()

	server, c := client(t)
	server.MaxLimit = 1
	server.ReportTotalPages = 500

	for i := 0; i < upstream.MaxPages+5; i++ {
		seedAccounts(t, server, fixture.Account{ID: fmt.Sprintf("t%03d", i), Type: "expense"})
	}

	transactions, err := c.AllTransactions(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Len(t, transactions, upstream.MaxPages)
}

func TestAllTransactionsScope(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	seedAccounts(t, server,
		fixture.Account{ID: "in-scope", Type: "expense", BranchID: "b1", Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		fixture.Account{ID: "other-branch", Type: "expense", BranchID: "b2", Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		fixture.Account{ID: "too-early", Type: "expense", BranchID: "b1", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		fixture.Account{ID: "too-late", Type: "expense", BranchID: "b1", Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)},
	)

	scope := models.Scope{
		BranchID: "b1",
		From:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Until:    time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}

	transactions, err := c.AllTransactions(context.Background(), scope)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "in-scope", transactions[0].ID)
}

func TestAllTransactionsReferenceShapes(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	seedAccounts(t, server, fixture.Account{
		ID:         "t1",
		Type:       "purchase",
		Amount:     decimal.RequireFromString("120.50"),
		BranchID:   "b1",
		BranchName: "Downtown",
		BranchCode: "DT",

		MaterialID:           "m1",
		MaterialName:         "Lavender Oil",
		MaterialSupplierID:   "SUP-7",
		MaterialSupplierName: "GreenHerb Co",

		OrderID:           "o1",
		OrderCustomerType: "retail",
		OrderCourierID:    "c9",
		OrderCourierName:  "Swift Logistics",
	}, fixture.Account{
		ID:         "t2",
		Type:       "expense",
		BranchID:   "b2",
		MaterialID: "m2",
		OrderID:    "o2",
	})

	transactions, err := c.AllTransactions(context.Background(), models.Scope{})
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	byID := map[string]models.Transaction{}
	for _, transaction := range transactions {
		byID[transaction.ID] = transaction
	}

	populated := byID["t1"]
	assert.True(t, populated.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, models.BranchRef{ID: "b1", Name: "Downtown", Code: "DT", Populated: true}, populated.Branch)
	assert.Equal(t, "SUP-7", populated.RawMaterial.SupplierID)
	assert.True(t, populated.Order.Populated)
	assert.Equal(t, "retail", populated.Order.CustomerType)
	assert.Equal(t, models.CourierRef{ID: "c9", Name: "Swift Logistics", Populated: true}, populated.Order.Courier)

	bare := byID["t2"]
	assert.Equal(t, models.BranchRef{ID: "b2"}, bare.Branch)
	assert.Equal(t, models.MaterialRef{ID: "m2"}, bare.RawMaterial)
	assert.Equal(t, models.OrderRef{ID: "o2"}, bare.Order)
}

func TestListSuppliersPaginated(t *testing.T) {
	t.Parallel()

	server, c := client(t)
	server.MaxLimit = 2

	for i := 0; i < 5; i++ {
		require.NoError(t, server.DB.Create(&fixture.Supplier{
			SupplierID:   fmt.Sprintf("SUP-%d", i),
			SupplierName: fmt.Sprintf("Supplier %d", i),
			IsActive:     true,
		}).Error)
	}

	suppliers, err := c.ListSuppliers(context.Background())
	require.NoError(t, err)
	assert.Len(t, suppliers, 5)
}

func TestListCourierPartners(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	require.NoError(t, server.DB.Create(&fixture.CourierPartner{ID: "c1", Name: "Swift Logistics", IsActive: true}).Error)
	require.NoError(t, server.DB.Create(&fixture.CourierPartner{ID: "c2", Name: "Retired Courier", IsActive: false}).Error)

	couriers, err := c.ListCourierPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, couriers, 1)
	assert.Equal(t, "c1", couriers[0].ID)
}

func TestListExpenseVendors(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	seedAccounts(t, server,
		fixture.Account{ID: "t1", Type: "expense", VendorName: "Acme Traders", Amount: decimal.NewFromInt(100)},
		fixture.Account{ID: "t2", Type: "expense", VendorName: "Acme Traders", Amount: decimal.NewFromInt(50)},
		fixture.Account{ID: "t3", Type: "expense", VendorName: "Acme Traders", ReferenceNumber: "REF-99", Amount: decimal.NewFromInt(10)},
		fixture.Account{ID: "t4", Type: "income"},
	)

	payees, err := c.ListExpenseVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, payees, 2)

	// Name and reference number together identify a payee.
	assert.Equal(t, "Acme Traders", payees[0].VendorName)
	assert.Equal(t, 2, payees[0].TransactionCount)
	assert.True(t, payees[0].TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "REF-99", payees[1].ReferenceNumber)
}

func TestHeadOfficeBranch(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	require.NoError(t, server.DB.Create(&fixture.Branch{ID: "b1", BranchName: "Downtown", IsActive: true}).Error)
	require.NoError(t, server.DB.Create(&fixture.Branch{ID: "ho", BranchName: " head OFFICE ", IsActive: true}).Error)

	branch, err := c.HeadOfficeBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ho", branch.ID)
}

func TestHeadOfficeBranchMissing(t *testing.T) {
	t.Parallel()

	server, c := client(t)

	require.NoError(t, server.DB.Create(&fixture.Branch{ID: "b1", BranchName: "Downtown", IsActive: true}).Error)

	_, err := c.HeadOfficeBranch(context.Background())
	assert.True(t, errors.Is(err, upstream.ErrNoHeadOffice))
}

func TestPing(t *testing.T) {
	t.Parallel()

	_, c := client(t)
	assert.NoError(t, c.Ping(context.Background()))

	unreachable := upstream.New(upstream.Config{BaseURL: "http://127.0.0.1:1", PageTimeout: time.Second})
	assert.Error(t, unreachable.Ping(context.Background()))
}
