package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/jagruklabs/jagruk/internal/models"
)

func stateWithTxns(txns ...models.Transaction) *models.AppState {
	state := models.NewAppState(time.Now())
	state.Transactions = txns
	return state
}

func expense(date string, amount float64) models.Transaction {
	return models.Transaction{
		ID:        "t-" + date + fmt.Sprintf("-%g", amount),
		Timestamp: date + "T12:00:00Z",
		Amount:    amount,
		Type:      models.TransactionExpense,
		Category:  "Food",
	}
}

func TestDaySpend_SumsOnlyExpensesOnDate(t *testing.T) {
	state := stateWithTxns(
		expense("2026-03-01", 100),
		expense("2026-03-01", 50),
		expense("2026-03-02", 999),
		models.Transaction{ID: "inc", Timestamp: "2026-03-01T09:00:00Z", Amount: 5000, Type: models.TransactionIncome, Category: "Salary"},
	)

	if got := DaySpend(state, "2026-03-01"); got != 150 {
		t.Errorf("DaySpend = %v, want 150", got)
	}
	if got := DaySpend(state, "2026-03-03"); got != 0 {
		t.Errorf("DaySpend on empty day = %v, want 0", got)
	}
}

func TestBudgetRemaining_NegativeIsValid(t *testing.T) {
	state := stateWithTxns(expense("2026-03-01", 700))
	state.Profile.DailyBudget = 500

	if got := BudgetRemaining(state, "2026-03-01"); got != -200 {
		t.Errorf("BudgetRemaining = %v, want -200", got)
	}
}

func TestBudgetRemaining_ZeroBudgetFallsBackToDefault(t *testing.T) {
	state := stateWithTxns(expense("2026-03-01", 100))
	state.Profile.DailyBudget = 0

	if got := BudgetRemaining(state, "2026-03-01"); got != 400 {
		t.Errorf("BudgetRemaining = %v, want 400 (500 default - 100)", got)
	}
}

func TestWeeklySpend_SevenDaysOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	state := stateWithTxns(
		expense("2026-03-07", 80),
		expense("2026-03-01", 40),
		expense("2026-02-25", 999), // outside window
	)

	series := WeeklySpend(state, now)
	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	if series[0].Date != "2026-03-01" || series[6].Date != "2026-03-07" {
		t.Errorf("window = %s..%s, want 2026-03-01..2026-03-07", series[0].Date, series[6].Date)
	}
	if series[0].Spend != 40 || series[6].Spend != 80 {
		t.Errorf("spends = %v/%v, want 40/80", series[0].Spend, series[6].Spend)
	}
	if series[6].Label != "Sat" {
		t.Errorf("label = %q, want Sat", series[6].Label)
	}
}

func TestSeriesMax_FloorsOnQuietWeeks(t *testing.T) {
	quiet := []DaySpendPoint{{Spend: 10}, {Spend: 0}}
	if got := SeriesMax(quiet); got != 100 {
		t.Errorf("SeriesMax = %v, want floor 100", got)
	}

	busy := []DaySpendPoint{{Spend: 10}, {Spend: 450}}
	if got := SeriesMax(busy); got != 450 {
		t.Errorf("SeriesMax = %v, want 450", got)
	}
}

func TestHabitSpend_CountsOnlyHabitExpenses(t *testing.T) {
	state := stateWithTxns(
		models.Transaction{ID: "a", Timestamp: "2026-03-01T10:00:00Z", Amount: 36, Type: models.TransactionExpense, Category: "Cigarettes", IsHabit: true},
		models.Transaction{ID: "b", Timestamp: "2026-03-02T10:00:00Z", Amount: 20, Type: models.TransactionExpense, Category: "Coffee", IsHabit: true},
		models.Transaction{ID: "c", Timestamp: "2026-03-02T11:00:00Z", Amount: 300, Type: models.TransactionExpense, Category: "Groceries"},
	)

	if got := HabitSpend(state); got != 56 {
		t.Errorf("HabitSpend = %v, want 56", got)
	}
}

func TestRedirectionAlert_ThresholdIsExclusive(t *testing.T) {
	at := stateWithTxns(models.Transaction{ID: "a", Timestamp: "2026-03-01T10:00:00Z", Amount: 500, Type: models.TransactionExpense, IsHabit: true, Category: "Cigarettes"})
	if RedirectionAlert(at) {
		t.Error("spend exactly at threshold must not alert")
	}

	over := stateWithTxns(models.Transaction{ID: "b", Timestamp: "2026-03-01T10:00:00Z", Amount: 500.01, Type: models.TransactionExpense, IsHabit: true, Category: "Cigarettes"})
	if !RedirectionAlert(over) {
		t.Error("spend over threshold must alert")
	}
}

func TestDayHabitUnits_FiltersByDate(t *testing.T) {
	state := stateWithTxns(
		models.Transaction{ID: "a", Timestamp: "2026-03-01T10:00:00Z", Amount: 36, Type: models.TransactionExpense, Category: "Cigarettes", IsHabit: true, UnitQuantity: 2},
		models.Transaction{ID: "b", Timestamp: "2026-03-02T10:00:00Z", Amount: 18, Type: models.TransactionExpense, Category: "Cigarettes", IsHabit: true, UnitQuantity: 1},
	)

	units := DayHabitUnits(state, "2026-03-01")
	if units["Cigarettes"] != 2 {
		t.Errorf("units = %v, want 2", units["Cigarettes"])
	}
}

func TestGroupTransactions_OrderAndWindow(t *testing.T) {
	var txns []models.Transaction
	// 35 transactions over 35 days, inserted oldest-first to prove the
	// grouping re-sorts by timestamp.
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		day := base.AddDate(0, 0, i)
		txns = append(txns, models.Transaction{
			ID:        fmt.Sprintf("t%d", i),
			Timestamp: day.Format(time.RFC3339),
			Amount:    10,
			Type:      models.TransactionExpense,
			Category:  "Food",
		})
	}
	state := stateWithTxns(txns...)

	groups := GroupTransactions(state)

	count := 0
	for _, g := range groups {
		count += len(g.Txns)
	}
	if count != 30 {
		t.Errorf("windowed transactions = %d, want 30", count)
	}
	if groups[0].Date != "2026-02-04" {
		t.Errorf("first group = %s, want the most recent day", groups[0].Date)
	}
	for i := 1; i < len(groups); i++ {
		if groups[i].Date >= groups[i-1].Date {
			t.Fatalf("groups out of order: %s before %s", groups[i-1].Date, groups[i].Date)
		}
	}
}

func TestGroupTransactions_IsIdempotent(t *testing.T) {
	state := stateWithTxns(
		expense("2026-03-02", 10),
		expense("2026-03-01", 20),
		expense("2026-03-02", 30),
	)

	first := GroupTransactions(state)
	second := GroupTransactions(state)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Date != second[i].Date || len(first[i].Txns) != len(second[i].Txns) {
			t.Fatalf("group %d differs between runs", i)
		}
	}
	if len(state.Transactions) != 3 {
		t.Error("grouping must not mutate the ledger")
	}
}
