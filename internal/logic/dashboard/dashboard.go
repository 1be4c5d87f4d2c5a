// Package dashboard turns posted and scheduled transactions into the figures
// shown on the dashboard: the current month snapshot, the calendar-year
// expense trend and the spending per transaction type.
//
// Every function here is pure. The current date is always passed in by the
// caller and the input slices are never modified.
package dashboard

import (
	"sort"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/shopspring/decimal"
)

// Snapshot holds the income and expense of the current month.
type Snapshot struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Trend is the net expense of every month of Year, January first.
type Trend struct {
	Year   int
	Months []model.MonthlyBucket
}

// CurrentMonthSnapshot sums the payments and deposits of the transactions
// dated in today's month, then adds every scheduled payment whose due day has
// been reached.
//
// The due day is compared numerically with today's day of month, so a due day
// of 31 is never reached in a shorter month.
func CurrentMonthSnapshot(transactions []*model.Transaction, scheduled []*model.ScheduledTransaction, today time.Time) Snapshot {
	snap := Snapshot{Income: decimal.Zero, Expense: decimal.Zero}

	for _, tx := range transactions {
		if tx.Date.Year() != today.Year() || tx.Date.Month() != today.Month() {
			continue
		}
		snap.Expense = snap.Expense.Add(tx.PaymentAmount)
		snap.Income = snap.Income.Add(tx.DepositAmount)
	}

	for _, st := range scheduled {
		if st.DueDay > model.MaxDueDay {
			continue
		}
		if st.DueDay <= today.Day() {
			snap.Expense = snap.Expense.Add(st.PaymentAmount)
		}
	}

	return snap
}

// MonthlyExpenseTrend builds the twelve month net expense series of today's
// year. It reports false when there are no transactions, since the first
// active month can't be known.
//
// Transactions only count when they fall in today's year and that year is
// also the year of the earliest transaction; the series never crosses a year
// boundary. Scheduled payments are projected from the later of the current
// month and the month of the earliest transaction through December. Only the
// month numbers are compared, whatever year the earliest transaction is in.
// In the current month a payment counts only once its due day has been
// reached.
func MonthlyExpenseTrend(transactions []*model.Transaction, scheduled []*model.ScheduledTransaction, today time.Time) (Trend, bool) {
	earliest, ok := earliestActive(transactions)
	if !ok {
		return Trend{}, false
	}

	year := today.Year()
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, tx := range transactions {
		txYear := tx.Date.Year()
		if txYear != year || txYear != earliest.Year() {
			continue
		}
		idx := int(tx.Date.Month()) - 1
		totals[idx] = totals[idx].Add(tx.PaymentAmount.Sub(tx.DepositAmount))
	}

	start := earliest.Month()
	if today.Month() > start {
		start = today.Month()
	}

	for _, st := range scheduled {
		if st.DueDay > model.MaxDueDay {
			continue
		}
		for m := start; m <= time.December; m++ {
			if m == today.Month() && st.DueDay > today.Day() {
				continue
			}
			totals[m-1] = totals[m-1].Add(st.PaymentAmount)
		}
	}

	trend := Trend{Year: year, Months: make([]model.MonthlyBucket, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		trend.Months = append(trend.Months, model.MonthlyBucket{Month: m, Total: totals[m-1]})
	}

	return trend, true
}

// TransactionTypeTotals sums the payment amount of the transactions per type.
// Deposits are ignored and types without transactions are absent.
func TransactionTypeTotals(transactions []*model.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		cur, ok := totals[tx.Type]
		if !ok {
			cur = decimal.Zero
		}
		totals[tx.Type] = cur.Add(tx.PaymentAmount)
	}
	return totals
}

// TypeTotalsWithCatalog lines totals up against the type catalog so that
// types without activity still get a zero entry. Catalog order is kept; types
// that only appear in totals follow, sorted by name.
func TypeTotalsWithCatalog(catalog []string, totals map[string]decimal.Decimal) []model.TypeTotal {
	result := make([]model.TypeTotal, 0, len(catalog))
	seen := make(map[string]bool, len(catalog))

	for _, name := range catalog {
		if seen[name] {
			continue
		}
		seen[name] = true

		total, ok := totals[name]
		if !ok {
			total = decimal.Zero
		}
		result = append(result, model.TypeTotal{Type: name, Total: total})
	}

	var extra []string
	for name := range totals {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		result = append(result, model.TypeTotal{Type: name, Total: totals[name]})
	}

	return result
}

func earliestActive(transactions []*model.Transaction) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, tx := range transactions {
		if !found || monthKey(tx.Date) < monthKey(earliest) {
			earliest = tx.Date
			found = true
		}
	}
	return earliest, found
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
