package views

import (
	"testing"
	"time"

	"github.com/hance08/clevercash/internal/logic/dashboard"
	"github.com/hance08/clevercash/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableColor()
}

func TestTransactionTableData(t *testing.T) {
	txs := []*model.Transaction{
		{ID: 4, Account: "Checking", Type: "Groceries", Date: model.NewDate(2024, time.May, 1), Description: "Shop", PaymentAmount: decimal.RequireFromString("1234.5")},
	}

	data := TransactionTableData(txs)
	require.Len(t, data, 2)
	row := data[1]
	assert.Equal(t, "4", row[0])
	assert.Equal(t, "2024-05-01", row[1])
	assert.Equal(t, "1,234.50", row[5])
	assert.Equal(t, "", row[6])
}

func TestScheduleTableData_DueStatus(t *testing.T) {
	schedules := []*model.ScheduledTransaction{
		{ScheduleName: "Rent", Frequency: model.FrequencyMonthly, DueDay: 1, PaymentAmount: decimal.NewFromInt(900)},
		{ScheduleName: "Gym", Frequency: model.FrequencyMonthly, DueDay: 20, PaymentAmount: decimal.NewFromInt(40)},
	}

	data := ScheduleTableData(schedules, 15)
	require.Len(t, data, 3)
	assert.Equal(t, "due", data[1][6])
	assert.Equal(t, "upcoming", data[2][6])
}

func TestTrendBarsAndTable(t *testing.T) {
	trend := dashboard.Trend{Year: 2024}
	for m := time.January; m <= time.December; m++ {
		trend.Months = append(trend.Months, model.MonthlyBucket{Month: m, Total: decimal.Zero})
	}
	trend.Months[2].Total = decimal.RequireFromString("-899.50")

	bars := TrendBars(trend)
	require.Len(t, bars, 12)
	assert.Equal(t, "Mar", bars[2].Label)
	assert.Equal(t, -900, bars[2].Value)

	table := TrendTableData(trend)
	assert.Equal(t, "Jan", table[0][0])
	assert.Equal(t, "-899.50", table[1][2])
}

func TestTypeTotalBars(t *testing.T) {
	bars := TypeTotalBars([]model.TypeTotal{
		{Type: "Housing", Total: decimal.RequireFromString("1200.49")},
		{Type: "Groceries", Total: decimal.Zero},
	})
	assert.Equal(t, pterm.Bars{{Label: "Housing", Value: 1200}, {Label: "Groceries", Value: 0}}, bars)
}

func TestSnapshotTableData(t *testing.T) {
	data := SnapshotTableData(dashboard.Snapshot{
		Income:  decimal.NewFromInt(100),
		Expense: decimal.NewFromInt(250),
	}, "EUR")

	assert.Equal(t, "100.00 EUR", data[0][1])
	assert.Equal(t, "250.00 EUR", data[1][1])
	assert.Equal(t, "-150.00 EUR", data[2][1])
}

func TestDueTodayLines(t *testing.T) {
	lines := DueTodayLines([]*model.ScheduledTransaction{
		{ScheduleName: "Rent", Type: "Housing", DueDay: 15, PaymentAmount: decimal.NewFromInt(1200)},
		{ScheduleName: "Phone", Type: "Utilities", DueDay: 15, PaymentAmount: decimal.RequireFromString("35.5")},
	}, "USD")

	require.Len(t, lines, 3)
	assert.Equal(t, "Scheduled transactions due today:", lines[0])
	assert.Equal(t, "  Rent (Housing) 1,200.00 USD", lines[1])
	assert.Equal(t, "  Phone (Utilities) 35.50 USD", lines[2])
}
