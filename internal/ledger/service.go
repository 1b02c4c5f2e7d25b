package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/vendorledger/backend/internal/models"
)

// Fetcher is the upstream surface the service reconciles over. It is
// implemented by upstream.Client.
type Fetcher interface {
	AllTransactions(ctx context.Context, scope models.Scope) ([]models.Transaction, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListCourierPartners(ctx context.Context) ([]models.CourierPartner, error)
	ListExpenseVendors(ctx context.Context) ([]models.ExpenseVendor, error)
	HeadOfficeBranch(ctx context.Context) (models.Branch, error)
}

// Service composes the fetcher with the pure reconciliation core. It
// holds no state between calls: every catalog and ledger is recomputed
// from freshly fetched data.
type Service struct {
	upstream Fetcher
}

// NewService returns a ledger service reading from the given upstream.
func NewService(upstream Fetcher) *Service {
	return &Service{upstream: upstream}
}

// Catalog builds the vendor directory for a scope. Any fetch error is
// terminal for the whole operation, partially fetched data is never
// used.
func (s *Service) Catalog(ctx context.Context, scope models.Scope, viewer models.Viewer) ([]models.Vendor, error) {
	transactions, err := s.upstream.AllTransactions(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	suppliers, err := s.upstream.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading suppliers: %w", err)
	}

	couriers, err := s.upstream.ListCourierPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courier partners: %w", err)
	}

	payees, err := s.upstream.ListExpenseVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading expense vendors: %w", err)
	}

	return BuildCatalog(transactions, suppliers, couriers, payees, viewer), nil
}

// Ledger is the reconciled view for one vendor: the matched
// transactions ordered by date descending, and their balance.
type Ledger struct {
	Vendor       models.Vendor
	Transactions []models.Transaction
	Balance      Balance
}

// VendorLedger reconciles the ledger for one vendor in the given
// scope.
//
// Supplier purchases are centralized at the head office, so supplier
// ledgers re-scope to the head office branch when it can be resolved.
// Resolution is opportunistic: if no head office is found the given
// scope is used unchanged.
func (s *Service) VendorLedger(ctx context.Context, scope models.Scope, viewer models.Viewer, vendor models.Vendor) (Ledger, error) {
	if vendor.Type == models.VendorSupplier {
		scope = s.supplierScope(ctx, scope)
	}

	transactions, err := s.upstream.AllTransactions(ctx, scope)
	if err != nil {
		return Ledger{}, fmt.Errorf("loading transactions: %w", err)
	}

	matched := MatchTransactions(vendor, transactions, viewer)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	return Ledger{
		Vendor:       vendor,
		Transactions: matched,
		Balance:      ComputeBalance(matched),
	}, nil
}

// supplierScope points the scope at the head office branch when one
// exists.
func (s *Service) supplierScope(ctx context.Context, scope models.Scope) models.Scope {
	branch, err := s.upstream.HeadOfficeBranch(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("head office branch not resolved, keeping requested scope")
		return scope
	}

	return scope.WithBranch(branch.ID)
}
