package ledger

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vendorledger/backend/internal/models"
)

// BuildCatalog merges the three source collections into one vendor
// directory, keeping only identities with at least one matching
// transaction in the given set. Membership uses exactly the predicate
// of Matches, so a cataloged vendor always yields a non-empty ledger
// for the same scope.
//
// The catalog is ordered by display name, ascending and
// case-insensitive. Customers never enter the catalog.
func BuildCatalog(
	transactions []models.Transaction,
	suppliers []models.Supplier,
	couriers []models.CourierPartner,
	payees []models.ExpenseVendor,
	viewer models.Viewer,
) []models.Vendor {
	candidates := make([]models.Vendor, 0, len(suppliers)+len(couriers)+len(payees))

	for _, s := range suppliers {
		candidates = append(candidates, models.NewSupplier(s.SupplierID, s.SupplierName))
	}
	for _, c := range couriers {
		candidates = append(candidates, models.NewCourier(c.ID, c.Name))
	}
	for _, p := range payees {
		candidates = append(candidates, models.NewExpenseVendor(p.VendorName, p.ReferenceNumber))
	}

	catalog := make([]models.Vendor, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, vendor := range candidates {
		key := naturalKey(vendor)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if hasMatch(vendor, transactions, viewer) {
			catalog = append(catalog, vendor)
		}
	}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(catalog, func(i, j int) bool {
		return collator.CompareString(catalog[i].DisplayName(), catalog[j].DisplayName()) < 0
	})

	return catalog
}

// naturalKey returns the deduplication key for a candidate identity.
func naturalKey(v models.Vendor) string {
	return string(v.Type) + "\x00" + normalize(v.ID) + "\x00" + normalize(v.Name) + "\x00" + normalize(v.ReferenceNumber)
}

// hasMatch reports whether at least one transaction matches the
// vendor. Zero matches silently drop the candidate, that is not an
// error.
func hasMatch(vendor models.Vendor, transactions []models.Transaction, viewer models.Viewer) bool {
	for _, t := range transactions {
		if Matches(vendor, t, viewer) {
			return true
		}
	}

	return false
}
