package stats

// Transaction is the slice of a financial record the totals care about.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	Amount  float64
	Type    string
	Deleted bool
}

// FinanceTotals holds the aggregate view of an academy's ledger, in INR.
type FinanceTotals struct {
	Income  float64
	Expense float64
	Balance float64
}

// Totals sums amounts by transaction type, skipping soft-deleted records.
// Balance is always Income - Expense in the INR base; currency conversion
// is applied by the caller afterwards, never here.
func Totals(records []Transaction) FinanceTotals {
	var t FinanceTotals
	for _, r := range records {
		if r.Deleted {
			continue
		}
		switch r.Type {
		case TypeIncome:
			t.Income += r.Amount
		case TypeExpense:
			t.Expense += r.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// Convert applies a linear exchange rate against the INR base.
func Convert(amountINR, rate float64) float64 {
	return Round2(amountINR * rate)
}
