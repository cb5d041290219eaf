// Package insights computes read-only views over the application state.
// Every function is pure given (state, now): no mutation, no hidden
// inputs, identical output for identical snapshots.
package insights

import (
	"sort"
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/models"
)

// DaySpend sums EXPENSE amounts for transactions timestamped on the given
// date (YYYY-MM-DD prefix match, device-local timestamps).
func DaySpend(state *models.AppState, date string) float64 {
	var spend float64
	for _, t := range state.Transactions {
		if t.Type == models.TransactionExpense && onDate(t.Timestamp, date) {
			spend += t.Amount
		}
	}
	return spend
}

// BudgetRemaining returns dailyBudget - spend for the date. Negative
// results are valid, display-significant output, not an error.
func BudgetRemaining(state *models.AppState, date string) float64 {
	budget := state.Profile.DailyBudget
	if budget == 0 {
		budget = constants.DefaultDailyBudget
	}
	return budget - DaySpend(state, date)
}

// DaySpendPoint is one bar of the weekly spend chart.
type DaySpendPoint struct {
	Date  string // YYYY-MM-DD format
	Label string // short weekday name
	Spend float64
}

// WeeklySpend returns per-day EXPENSE sums for the most recent 7 calendar
// days, today inclusive, oldest first.
func WeeklySpend(state *models.AppState, now time.Time) []DaySpendPoint {
	series := make([]DaySpendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(constants.DateFormat)
		series = append(series, DaySpendPoint{
			Date:  date,
			Label: day.Format("Mon"),
			Spend: DaySpend(state, date),
		})
	}
	return series
}

// SeriesMax returns the maximum spend of the series, floored at the chart
// scale minimum so bar heights stay meaningful on an empty week.
func SeriesMax(series []DaySpendPoint) float64 {
	max := constants.ChartScaleFloor
	for _, p := range series {
		if p.Spend > max {
			max = p.Spend
		}
	}
	return max
}

// HabitSpend sums the amounts of habit-tagged EXPENSE transactions, the
// "leak spend" total.
func HabitSpend(state *models.AppState) float64 {
	var total float64
	for _, t := range state.Transactions {
		if t.IsHabit && t.Type == models.TransactionExpense {
			total += t.Amount
		}
	}
	return total
}

// HabitUnits sums unit quantities of habit transactions grouped by
// category (e.g. sticks of cigarettes, cups of coffee).
func HabitUnits(state *models.AppState) map[string]float64 {
	units := make(map[string]float64)
	for _, t := range state.Transactions {
		if t.IsHabit {
			units[t.Category] += t.UnitQuantity
		}
	}
	return units
}

// DayHabitUnits sums unit quantities of habit transactions on one day,
// grouped by category. Used to check daily habit limits.
func DayHabitUnits(state *models.AppState, date string) map[string]float64 {
	units := make(map[string]float64)
	for _, t := range state.Transactions {
		if t.IsHabit && onDate(t.Timestamp, date) {
			units[t.Category] += t.UnitQuantity
		}
	}
	return units
}

// RedirectionAlert reports whether total leak spend has crossed the fixed
// advisory threshold.
func RedirectionAlert(state *models.AppState) bool {
	return HabitSpend(state) > constants.RedirectionThreshold
}

// TxnGroup is one calendar day's slice of the recent ledger.
type TxnGroup struct {
	Date string // YYYY-MM-DD format
	Txns []models.Transaction
}

// GroupTransactions groups the most recent transactions (capped at the
// ledger window) by calendar date. Groups and the transactions inside them
// are ordered by recency; the prepend convention in the store is not
// trusted, the window is re-sorted by timestamp first.
func GroupTransactions(state *models.AppState) []TxnGroup {
	sorted := append([]models.Transaction(nil), state.Transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > constants.LedgerWindow {
		sorted = sorted[:constants.LedgerWindow]
	}

	var groups []TxnGroup
	index := make(map[string]int)
	for _, t := range sorted {
		date := dateOf(t.Timestamp)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, TxnGroup{Date: date})
		}
		groups[i].Txns = append(groups[i].Txns, t)
	}
	return groups
}

// dateOf extracts the YYYY-MM-DD prefix from an RFC3339 timestamp.
func dateOf(timestamp string) string {
	if len(timestamp) < len(constants.DateFormat) {
		return timestamp
	}
	return timestamp[:len(constants.DateFormat)]
}

func onDate(timestamp, date string) bool {
	return dateOf(timestamp) == date
}
