package views

import (
	"fmt"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/utils"
	"github.com/pterm/pterm"
)

// ScheduleTableData marks schedules whose due day has been reached on
// today's day of month.
func ScheduleTableData(schedules []*model.ScheduledTransaction, todayDay int) pterm.TableData {
	tableData := pterm.TableData{
		{"Name", "Account", "Type", "Frequency", "Due Day", "Payment", "This Month"},
	}

	due := make(map[string]bool)
	for _, st := range service.DueThisMonth(schedules, todayDay) {
		due[st.ScheduleName] = true
	}

	for _, st := range schedules {
		status := pterm.Gray("upcoming")
		if due[st.ScheduleName] {
			status = pterm.Yellow("due")
		}
		tableData = append(tableData, []string{
			st.ScheduleName,
			st.Account,
			st.Type,
			string(st.Frequency),
			fmt.Sprintf("%d", st.DueDay),
			pterm.Red(utils.FormatAmount(st.PaymentAmount)),
			status,
		})
	}
	return tableData
}

func RenderScheduleList(title string, schedules []*model.ScheduledTransaction, todayDay int) error {
	if len(schedules) == 0 {
		pterm.Warning.Println("No scheduled transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(ScheduleTableData(schedules, todayDay)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d scheduled transactions\n", len(schedules))
	return nil
}

func RenderScheduleDetail(st *model.ScheduledTransaction, currency string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Name"), st.ScheduleName},
		{pterm.Blue("Account"), st.Account},
		{pterm.Blue("Type"), st.Type},
		{pterm.Blue("Frequency"), string(st.Frequency)},
		{pterm.Blue("Due Day"), fmt.Sprintf("%d", st.DueDay)},
		{pterm.Blue("Payment"), utils.FormatMoney(st.PaymentAmount, currency)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
