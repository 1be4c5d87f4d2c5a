package views

import (
	"fmt"
	"strings"

	"github.com/hance08/clevercash/internal/logic/dashboard"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/utils"
	"github.com/pterm/pterm"
)

func RenderDashboard(d *service.Dashboard) error {
	ui.PrintL1Title("CleverCash Dashboard  %s", d.Today.Format(model.DateLayout))

	counts := pterm.TableData{
		{"Accounts", "Transactions", "Scheduled"},
		{fmt.Sprint(d.AccountCount), fmt.Sprint(d.TransactionCount), fmt.Sprint(d.ScheduleCount)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(counts).Render(); err != nil {
		return err
	}

	if len(d.DueToday) > 0 {
		pterm.Info.Println(strings.Join(DueTodayLines(d.DueToday, d.Currency), "\n"))
	}

	ui.PrintL2Title("This Month")
	if err := pterm.DefaultTable.WithData(SnapshotTableData(d.Snapshot, d.Currency)).Render(); err != nil {
		return err
	}

	ui.PrintL2Title("Monthly Expenses %d", d.Today.Year())
	if !d.HasTrend {
		pterm.Info.Println("No transactions yet, the trend starts with the first one")
	} else {
		if err := renderBars(TrendBars(d.Trend), false); err != nil {
			return err
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(TrendTableData(d.Trend)).Render(); err != nil {
			return err
		}
	}

	ui.PrintL2Title("Spending by Type")
	if len(d.TypeTotals) == 0 {
		pterm.Info.Println("No transaction types yet")
		return nil
	}
	return renderBars(TypeTotalBars(d.TypeTotals), true)
}

// DueTodayLines is the notice shown for schedules due today, a heading
// followed by one line per schedule.
func DueTodayLines(schedules []*model.ScheduledTransaction, currency string) []string {
	lines := make([]string, 0, len(schedules)+1)
	lines = append(lines, "Scheduled transactions due today:")
	for _, st := range schedules {
		lines = append(lines, fmt.Sprintf("  %s (%s) %s", st.ScheduleName, st.Type, utils.FormatMoney(st.PaymentAmount, currency)))
	}
	return lines
}

func SnapshotTableData(snap dashboard.Snapshot, currency string) pterm.TableData {
	net := snap.Income.Sub(snap.Expense)
	netStr := utils.FormatMoney(net, currency)
	if net.IsNegative() {
		netStr = pterm.Red(netStr)
	} else {
		netStr = pterm.Green(netStr)
	}

	return pterm.TableData{
		{pterm.Blue("Income"), pterm.Green(utils.FormatMoney(snap.Income, currency))},
		{pterm.Blue("Expense"), pterm.Red(utils.FormatMoney(snap.Expense, currency))},
		{pterm.Blue("Net"), netStr},
	}
}

// TrendBars labels each month with its short name. Bar heights are whole
// currency units.
func TrendBars(trend dashboard.Trend) pterm.Bars {
	bars := make(pterm.Bars, 0, len(trend.Months))
	for _, b := range trend.Months {
		bars = append(bars, pterm.Bar{
			Label: b.Month.String()[:3],
			Value: int(b.Total.Round(0).IntPart()),
		})
	}
	return bars
}

func TrendTableData(trend dashboard.Trend) pterm.TableData {
	header := make([]string, 0, len(trend.Months))
	row := make([]string, 0, len(trend.Months))
	for _, b := range trend.Months {
		header = append(header, b.Month.String()[:3])
		row = append(row, utils.FormatAmount(b.Total))
	}
	return pterm.TableData{header, row}
}

func TypeTotalBars(totals []model.TypeTotal) pterm.Bars {
	bars := make(pterm.Bars, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, pterm.Bar{
			Label: t.Type,
			Value: int(t.Total.Round(0).IntPart()),
		})
	}
	return bars
}

func renderBars(bars pterm.Bars, horizontal bool) error {
	chart := pterm.DefaultBarChart.WithBars(bars).WithShowValue()
	if horizontal {
		chart = chart.WithHorizontal()
	}
	return chart.Render()
}
