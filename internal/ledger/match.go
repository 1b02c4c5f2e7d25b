package ledger

import (
	"github.com/vendorledger/backend/internal/models"
)

// normalize returns the form used for every natural-key comparison.
func normalize(s string) string {
	return models.NormalizeKey(s)
}

// hintEqual reports whether a transaction hint matches a vendor key.
// An empty key never matches anything, so inconsistently populated
// upstream records fail the individual check instead of matching
// everything.
func hintEqual(hint, key string) bool {
	k := normalize(key)
	return k != "" && normalize(hint) == k
}

// Excluded reports whether a transaction is invisible to every vendor
// ledger, regardless of vendor type:
//
//  1. lead income: the reserved account code prefix with no linked order
//  2. a populated order for a lead customer
//  3. any income with a linked order. The ledger only shows vendor-side
//     activity plus manually entered, order-less income; income from
//     orders belongs to the accounts view.
//  4. a branch viewer only sees transactions carrying both a vendor
//     hint and a branch reference
func Excluded(t models.Transaction, viewer models.Viewer) bool {
	if t.IsLeadIncome() {
		return true
	}

	if t.Order.Populated && normalize(t.Order.CustomerType) == "lead" {
		return true
	}

	if t.Type == models.TypeIncome && t.Order.Present() {
		return true
	}

	if viewer.Kind == models.ViewerBranch && (!t.HasVendorHint() || !t.Branch.Present()) {
		return true
	}

	return false
}

// Matches reports whether the transaction is attributable to the
// vendor. Missing or malformed identity fields fail their individual
// check and never produce an error.
func Matches(vendor models.Vendor, t models.Transaction, viewer models.Viewer) bool {
	if Excluded(t, viewer) {
		return false
	}

	switch vendor.Type {
	case models.VendorSupplier:
		return matchesSupplier(vendor, t)
	case models.VendorCourier:
		return matchesCourier(vendor, t)
	case models.VendorExpense:
		return matchesExpense(vendor, t)
	}

	return false
}

// matchesSupplier matches on the direct vendor name, the direct
// supplier id, or the supplier fields of a populated raw material
// reference. The first predicate that matches wins, in exactly this
// order.
func matchesSupplier(vendor models.Vendor, t models.Transaction) bool {
	if hintEqual(t.VendorName, vendor.Name) {
		return true
	}

	if hintEqual(t.SupplierID, vendor.ID) {
		return true
	}

	if t.RawMaterial.Populated {
		if hintEqual(t.RawMaterial.SupplierName, vendor.Name) {
			return true
		}
		if hintEqual(t.RawMaterial.SupplierID, vendor.ID) {
			return true
		}
	}

	return false
}

// matchesCourier requires a populated order whose courier partner
// reference resolves to the vendor's id. There is no name fallback for
// couriers.
func matchesCourier(vendor models.Vendor, t models.Transaction) bool {
	if !t.Order.Populated {
		return false
	}

	return hintEqual(t.Order.Courier.ID, vendor.ID)
}

// matchesExpense requires the vendor name to match and the reference
// numbers to agree. A vendor without a reference number only matches
// transactions that also have none.
func matchesExpense(vendor models.Vendor, t models.Transaction) bool {
	if !hintEqual(t.VendorName, vendor.Name) {
		return false
	}

	return normalize(t.ReferenceNumber) == normalize(vendor.ReferenceNumber)
}

// MatchTransactions returns the subset of transactions attributable to
// the vendor. The result is unordered; display ordering is the
// caller's concern.
func MatchTransactions(vendor models.Vendor, transactions []models.Transaction, viewer models.Viewer) []models.Transaction {
	matched := make([]models.Transaction, 0)
	for _, t := range transactions {
		if Matches(vendor, t, viewer) {
			matched = append(matched, t)
		}
	}

	return matched
}
