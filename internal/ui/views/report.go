package views

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/utils"
	"github.com/pterm/pterm"
)

func RenderReport(kind string, r *service.Report) error {
	if err := RenderTransactionList(kind+" report: "+r.Subject, r.Transactions); err != nil {
		return err
	}
	if len(r.Transactions) == 0 {
		return nil
	}

	totals := pterm.TableData{
		{pterm.Blue("Total Payment"), pterm.Red(utils.FormatMoney(r.TotalPayment, r.Currency))},
		{pterm.Blue("Total Deposit"), pterm.Green(utils.FormatMoney(r.TotalDeposit, r.Currency))},
	}
	return pterm.DefaultTable.WithData(totals).Render()
}
