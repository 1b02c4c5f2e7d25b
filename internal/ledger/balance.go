package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/vendorledger/backend/internal/models"
)

// Balance is the derived credit/debit/outstanding view of a matched
// transaction set.
//
// Total only accrues transactions that are not yet settled: a negative
// total is a net payable (owed to the vendor), a positive total a net
// receivable, zero means fully settled.
type Balance struct {
	Total  decimal.Decimal `json:"total" example:"-500"`
	Credit decimal.Decimal `json:"credit" example:"200"`
	Debit  decimal.Decimal `json:"debit" example:"700"`
}

// ComputeBalance folds a transaction set into its balance. It is pure
// and deterministic for a given input.
func ComputeBalance(transactions []models.Transaction) Balance {
	balance := Balance{
		Total:  decimal.Zero,
		Credit: decimal.Zero,
		Debit:  decimal.Zero,
	}

	for _, t := range transactions {
		switch {
		case t.Type == models.TypeIncome:
			balance.Credit = balance.Credit.Add(t.Amount)
		case t.Type.Outflow():
			balance.Debit = balance.Debit.Add(t.Amount)
		default:
			// Unknown transaction types contribute nothing
			continue
		}

		if t.PaymentStatus.Settled() {
			continue
		}

		if t.Type == models.TypeIncome {
			balance.Total = balance.Total.Add(t.Amount)
		} else {
			balance.Total = balance.Total.Sub(t.Amount)
		}
	}

	return balance
}
