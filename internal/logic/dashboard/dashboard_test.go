package dashboard

import (
	"testing"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return model.NewDate(y, m, d)
}

func payment(d time.Time, typ, amount string) *model.Transaction {
	return &model.Transaction{Account: "Checking", Type: typ, Date: d, PaymentAmount: dec(amount), DepositAmount: decimal.Zero}
}

func deposit(d time.Time, amount string) *model.Transaction {
	return &model.Transaction{Account: "Checking", Type: "Salary", Date: d, PaymentAmount: decimal.Zero, DepositAmount: dec(amount)}
}

func schedule(name string, dueDay int, amount string) *model.ScheduledTransaction {
	return &model.ScheduledTransaction{
		ScheduleName:  name,
		Account:       "Checking",
		Type:          "Bills",
		Frequency:     model.FrequencyMonthly,
		DueDay:        dueDay,
		PaymentAmount: dec(amount),
	}
}

func monthTotals(trend Trend) map[time.Month]string {
	out := make(map[time.Month]string, len(trend.Months))
	for _, b := range trend.Months {
		out[b.Month] = b.Total.StringFixed(2)
	}
	return out
}

func TestCurrentMonthSnapshot_Empty(t *testing.T) {
	snap := CurrentMonthSnapshot(nil, nil, date(2024, time.March, 10))
	assert.True(t, snap.Income.IsZero())
	assert.True(t, snap.Expense.IsZero())
}

func TestCurrentMonthSnapshot_PostedPayment(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.March, 5), "Food", "50")}

	snap := CurrentMonthSnapshot(txs, nil, date(2024, time.March, 10))

	assert.True(t, snap.Income.IsZero())
	assert.True(t, snap.Expense.Equal(dec("50")))
}

func TestCurrentMonthSnapshot_FiltersOtherMonthsAndYears(t *testing.T) {
	txs := []*model.Transaction{
		payment(date(2024, time.March, 1), "Food", "10.25"),
		payment(date(2024, time.February, 28), "Food", "99"),
		payment(date(2023, time.March, 15), "Food", "99"),
		deposit(date(2024, time.March, 2), "1500"),
		deposit(date(2024, time.April, 2), "1500"),
	}

	snap := CurrentMonthSnapshot(txs, nil, date(2024, time.March, 31))

	assert.Equal(t, "1500.00", snap.Income.StringFixed(2))
	assert.Equal(t, "10.25", snap.Expense.StringFixed(2))
}

func TestCurrentMonthSnapshot_ScheduledDueDay(t *testing.T) {
	scheduled := []*model.ScheduledTransaction{schedule("Internet", 15, "100")}

	tests := []struct {
		name    string
		today   time.Time
		expense string
	}{
		{"before due day", date(2024, time.March, 10), "0.00"},
		{"on due day", date(2024, time.March, 15), "100.00"},
		{"after due day", date(2024, time.March, 20), "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := CurrentMonthSnapshot(nil, scheduled, tt.today)
			assert.Equal(t, tt.expense, snap.Expense.StringFixed(2))
		})
	}
}

func TestCurrentMonthSnapshot_IgnoresOutOfRangeDueDay(t *testing.T) {
	scheduled := []*model.ScheduledTransaction{
		schedule("Broken", 32, "500"),
		schedule("Rent", 1, "1000"),
	}

	snap := CurrentMonthSnapshot(nil, scheduled, date(2024, time.March, 31))

	assert.Equal(t, "1000.00", snap.Expense.StringFixed(2))
}

func TestCurrentMonthSnapshot_DueDay31InShortMonth(t *testing.T) {
	scheduled := []*model.ScheduledTransaction{schedule("Card", 31, "40")}

	snap := CurrentMonthSnapshot(nil, scheduled, date(2024, time.April, 30))
	assert.True(t, snap.Expense.IsZero(), "numeric comparison: day 30 has not reached due day 31")

	snap = CurrentMonthSnapshot(nil, scheduled, date(2024, time.May, 31))
	assert.Equal(t, "40.00", snap.Expense.StringFixed(2))
}

func TestMonthlyExpenseTrend_NoTransactions(t *testing.T) {
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "1000")}

	trend, ok := MonthlyExpenseTrend(nil, scheduled, date(2024, time.June, 1))

	assert.False(t, ok)
	assert.Empty(t, trend.Months)
}

func TestMonthlyExpenseTrend_AlwaysTwelveMonthsInOrder(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.February, 3), "Food", "5")}

	trend, ok := MonthlyExpenseTrend(txs, nil, date(2024, time.February, 10))
	require.True(t, ok)
	require.Len(t, trend.Months, 12)
	assert.Equal(t, 2024, trend.Year)
	for i, b := range trend.Months {
		assert.Equal(t, time.Month(i+1), b.Month)
	}
}

func TestMonthlyExpenseTrend_NetsDepositsAgainstPayments(t *testing.T) {
	txs := []*model.Transaction{
		payment(date(2024, time.January, 3), "Food", "200"),
		deposit(date(2024, time.January, 28), "500"),
		payment(date(2024, time.February, 3), "Food", "80.50"),
	}

	trend, ok := MonthlyExpenseTrend(txs, nil, date(2024, time.February, 10))
	require.True(t, ok)

	totals := monthTotals(trend)
	assert.Equal(t, "-300.00", totals[time.January])
	assert.Equal(t, "80.50", totals[time.February])
	assert.Equal(t, "0.00", totals[time.March])
}

func TestMonthlyExpenseTrend_EarliestInOctoberTodayDecember(t *testing.T) {
	txs := []*model.Transaction{
		payment(date(2024, time.October, 12), "Food", "100"),
		payment(date(2024, time.November, 2), "Food", "40"),
		deposit(date(2024, time.November, 20), "15"),
		payment(date(2024, time.December, 1), "Food", "60"),
	}
	scheduled := []*model.ScheduledTransaction{
		schedule("Rent", 5, "1000"),
		schedule("Gym", 20, "30"),
	}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.December, 10))
	require.True(t, ok)

	totals := monthTotals(trend)
	for m := time.January; m <= time.September; m++ {
		assert.Equal(t, "0.00", totals[m], m.String())
	}
	assert.Equal(t, "100.00", totals[time.October])
	assert.Equal(t, "25.00", totals[time.November])
	// Rent is due, Gym is not yet.
	assert.Equal(t, "1060.00", totals[time.December])
}

func TestMonthlyExpenseTrend_ProjectsFutureMonths(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.January, 15), "Food", "10")}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 15, "1000")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.September, 14))
	require.True(t, ok)

	totals := monthTotals(trend)
	assert.Equal(t, "10.00", totals[time.January])
	for m := time.February; m <= time.August; m++ {
		assert.Equal(t, "0.00", totals[m], "past months are not back-filled: %s", m)
	}
	assert.Equal(t, "0.00", totals[time.September], "due day not reached")
	for m := time.October; m <= time.December; m++ {
		assert.Equal(t, "1000.00", totals[m], m.String())
	}
}

func TestMonthlyExpenseTrend_StartsAtEarliestActiveMonth(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.August, 1), "Food", "1")}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "500")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.March, 1))
	require.True(t, ok)

	totals := monthTotals(trend)
	for m := time.March; m <= time.July; m++ {
		assert.Equal(t, "0.00", totals[m], m.String())
	}
	assert.Equal(t, "501.00", totals[time.August])
	assert.Equal(t, "500.00", totals[time.December])
}

func TestMonthlyExpenseTrend_IgnoresOutOfRangeDueDay(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.November, 1), "Food", "1")}
	scheduled := []*model.ScheduledTransaction{schedule("Broken", 40, "500")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.November, 30))
	require.True(t, ok)

	totals := monthTotals(trend)
	assert.Equal(t, "1.00", totals[time.November])
	assert.Equal(t, "0.00", totals[time.December])
}

func TestMonthlyExpenseTrend_SingleCalendarYear(t *testing.T) {
	txs := []*model.Transaction{
		payment(date(2023, time.December, 20), "Food", "70"),
		payment(date(2024, time.January, 5), "Food", "30"),
	}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "100")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.November, 2))
	require.True(t, ok)

	totals := monthTotals(trend)
	// Earliest activity is in 2023, so no posted transaction is charted.
	assert.Equal(t, "0.00", totals[time.January])
	// Projection starts at max(November, December).
	assert.Equal(t, "0.00", totals[time.November])
	assert.Equal(t, "100.00", totals[time.December])
}

func TestMonthlyExpenseTrend_PriorYearEarliestComparesMonthNumbers(t *testing.T) {
	txs := []*model.Transaction{payment(date(2023, time.November, 20), "Food", "45")}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "100")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.March, 2))
	require.True(t, ok)

	totals := monthTotals(trend)
	for m := time.January; m <= time.October; m++ {
		assert.Equal(t, "0.00", totals[m], m.String())
	}
	assert.Equal(t, "100.00", totals[time.November])
	assert.Equal(t, "100.00", totals[time.December])
}

func TestMonthlyExpenseTrend_FutureYearEarliestStillProjects(t *testing.T) {
	txs := []*model.Transaction{payment(date(2025, time.February, 1), "Food", "45")}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "100")}

	trend, ok := MonthlyExpenseTrend(txs, scheduled, date(2024, time.June, 2))
	require.True(t, ok)

	totals := monthTotals(trend)
	assert.Equal(t, "0.00", totals[time.May])
	assert.Equal(t, "100.00", totals[time.June])
	assert.Equal(t, "100.00", totals[time.December])
}

func TestMonthlyExpenseTrend_DoesNotMutateInputs(t *testing.T) {
	txs := []*model.Transaction{payment(date(2024, time.May, 5), "Food", "12")}
	scheduled := []*model.ScheduledTransaction{schedule("Rent", 1, "100")}
	today := date(2024, time.May, 20)

	first, ok := MonthlyExpenseTrend(txs, scheduled, today)
	require.True(t, ok)
	second, ok := MonthlyExpenseTrend(txs, scheduled, today)
	require.True(t, ok)

	assert.Equal(t, monthTotals(first), monthTotals(second))
	assert.Equal(t, "12", txs[0].PaymentAmount.String())
	assert.Equal(t, 1, scheduled[0].DueDay)
	assert.Equal(t, CurrentMonthSnapshot(txs, scheduled, today), CurrentMonthSnapshot(txs, scheduled, today))
}

func TestTransactionTypeTotals(t *testing.T) {
	txs := []*model.Transaction{
		payment(date(2024, time.January, 1), "Rent", "1000"),
		payment(date(2024, time.February, 1), "Rent", "200"),
		payment(date(2024, time.February, 3), "Food", "50"),
		deposit(date(2024, time.February, 3), "3000"),
	}

	totals := TransactionTypeTotals(txs)

	require.Len(t, totals, 3)
	assert.Equal(t, "1200", totals["Rent"].String())
	assert.Equal(t, "50", totals["Food"].String())
	assert.True(t, totals["Salary"].IsZero(), "deposits are not counted")
	assert.Empty(t, TransactionTypeTotals(nil))
}

func TestTypeTotalsWithCatalog(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Rent":   dec("1200"),
		"Travel": dec("80"),
		"Books":  dec("12"),
	}

	got := TypeTotalsWithCatalog([]string{"Rent", "Food", "Rent"}, totals)

	require.Len(t, got, 4)
	assert.Equal(t, "Rent", got[0].Type)
	assert.Equal(t, "1200", got[0].Total.String())
	assert.Equal(t, "Food", got[1].Type)
	assert.True(t, got[1].Total.IsZero())
	assert.Equal(t, "Books", got[2].Type)
	assert.Equal(t, "Travel", got[3].Type)
}
