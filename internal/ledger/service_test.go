package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorledger/backend/internal/ledger"
	"github.com/vendorledger/backend/internal/models"
)

type fakeUpstream struct {
	transactions []models.Transaction
	suppliers    []models.Supplier
	couriers     []models.CourierPartner
	payees       []models.ExpenseVendor
	headOffice   models.Branch

	transactionsErr error
	suppliersErr    error
	headOfficeErr   error

	lastScope models.Scope
}

func (f *fakeUpstream) AllTransactions(_ context.Context, scope models.Scope) ([]models.Transaction, error) {
	f.lastScope = scope
	return f.transactions, f.transactionsErr
}

func (f *fakeUpstream) ListSuppliers(context.Context) ([]models.Supplier, error) {
	return f.suppliers, f.suppliersErr
}

func (f *fakeUpstream) ListCourierPartners(context.Context) ([]models.CourierPartner, error) {
	return f.couriers, nil
}

func (f *fakeUpstream) ListExpenseVendors(context.Context) ([]models.ExpenseVendor, error) {
	return f.payees, nil
}

func (f *fakeUpstream) HeadOfficeBranch(context.Context) (models.Branch, error) {
	return f.headOffice, f.headOfficeErr
}

func TestServiceCatalog(t *testing.T) {
	t.Parallel()

	upstream := &fakeUpstream{
		transactions: []models.Transaction{expenseTransaction("Acme Traders", "")},
		payees:       []models.ExpenseVendor{{VendorName: "Acme Traders"}},
	}
	service := ledger.NewService(upstream)

	catalog, err := service.Catalog(context.Background(), models.Scope{}, models.GlobalViewer())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Acme Traders", catalog[0].DisplayName())
}

func TestServiceCatalogFetchErrorIsTerminal(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("upstream unreachable")
	service := ledger.NewService(&fakeUpstream{suppliersErr: upstreamErr})

	catalog, err := service.Catalog(context.Background(), models.Scope{}, models.GlobalViewer())
	assert.Nil(t, catalog)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Contains(t, err.Error(), "loading suppliers")
}

func TestServiceVendorLedgerOrdersByDateDescending(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	older := expenseTransaction("Acme Traders", "")
	older.ID = "older"
	older.Date = day(1)
	newer := expenseTransaction("Acme Traders", "")
	newer.ID = "newer"
	newer.Date = day(9)
	middle := expenseTransaction("Acme Traders", "")
	middle.ID = "middle"
	middle.Date = day(5)

	upstream := &fakeUpstream{transactions: []models.Transaction{older, newer, middle}}
	service := ledger.NewService(upstream)

	result, err := service.VendorLedger(context.Background(), models.Scope{}, models.GlobalViewer(), models.NewExpenseVendor("Acme Traders", ""))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	assert.Equal(t, "newer", result.Transactions[0].ID)
	assert.Equal(t, "middle", result.Transactions[1].ID)
	assert.Equal(t, "older", result.Transactions[2].ID)

	assert.True(t, result.Balance.Debit.Equal(decimal.NewFromInt(300)))
}

func TestServiceSupplierLedgerUsesHeadOfficeScope(t *testing.T) {
	t.Parallel()

	upstream := &fakeUpstream{headOffice: models.Branch{ID: "ho", BranchName: "Head Office"}}
	service := ledger.NewService(upstream)

	scope := models.Scope{BranchID: "b7"}
	_, err := service.VendorLedger(context.Background(), scope, models.GlobalViewer(), models.NewSupplier("SUP-1", "GreenHerb Co"))
	require.NoError(t, err)
	assert.Equal(t, "ho", upstream.lastScope.BranchID)
}

func TestServiceSupplierLedgerKeepsScopeWithoutHeadOffice(t *testing.T) {
	t.Parallel()

	upstream := &fakeUpstream{headOfficeErr: errors.New("no head office branch")}
	service := ledger.NewService(upstream)

	scope := models.Scope{BranchID: "b7"}
	_, err := service.VendorLedger(context.Background(), scope, models.GlobalViewer(), models.NewSupplier("SUP-1", "GreenHerb Co"))
	require.NoError(t, err)
	assert.Equal(t, "b7", upstream.lastScope.BranchID)
}

func TestServiceNonSupplierLedgerKeepsScope(t *testing.T) {
	t.Parallel()

	upstream := &fakeUpstream{headOffice: models.Branch{ID: "ho"}}
	service := ledger.NewService(upstream)

	scope := models.Scope{BranchID: "b7"}
	_, err := service.VendorLedger(context.Background(), scope, models.GlobalViewer(), models.NewCourier("c1", "Swift Logistics"))
	require.NoError(t, err)
	assert.Equal(t, "b7", upstream.lastScope.BranchID)
}

func TestServiceVendorLedgerFetchError(t *testing.T) {
	t.Parallel()

	service := ledger.NewService(&fakeUpstream{transactionsErr: errors.New("timeout")})

	_, err := service.VendorLedger(context.Background(), models.Scope{}, models.GlobalViewer(), models.NewExpenseVendor("Acme Traders", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading transactions")
}
