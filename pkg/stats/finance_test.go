package stats

import "testing"

func TestTotalsBalanceInvariant(t *testing.T) {
	records := []Transaction{
		{Amount: 1500, Type: TypeIncome},
		{Amount: 2500, Type: TypeIncome},
		{Amount: 700, Type: TypeExpense},
		{Amount: 300, Type: TypeExpense, Deleted: true}, // soft-deleted, ignored
		{Amount: 99, Type: "transfer"},                  // unknown type, ignored
	}
	got := Totals(records)

	if got.Income != 4000 {
		t.Errorf("Income = %v, want 4000", got.Income)
	}
	if got.Expense != 700 {
		t.Errorf("Expense = %v, want 700", got.Expense)
	}
	// Invariant: balance equals income minus expense in INR, before any
	// currency conversion.
	if got.Balance != got.Income-got.Expense {
		t.Errorf("Balance = %v, want Income-Expense = %v", got.Balance, got.Income-got.Expense)
	}
}

func TestTotalsEmpty(t *testing.T) {
	got := Totals(nil)
	if got.Income != 0 || got.Expense != 0 || got.Balance != 0 {
		t.Errorf("Totals(nil) = %+v, want zeroes", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(1000, 0.012); got != 12 {
		t.Errorf("Convert(1000, 0.012) = %v, want 12", got)
	}
	if got := Convert(333, 0.0113); got != 3.76 {
		t.Errorf("Convert(333, 0.0113) = %v, want 3.76", got)
	}
}
