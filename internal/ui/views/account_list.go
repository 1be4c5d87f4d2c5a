package views

import (
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/utils"
	"github.com/pterm/pterm"
)

func AccountTableData(accounts []*model.Account, currency string) pterm.TableData {
	tableData := pterm.TableData{{"Name", "Opening Date", "Opening Balance"}}

	for _, acc := range accounts {
		balance := utils.FormatMoney(acc.OpeningBalance, currency)
		if acc.OpeningBalance.IsNegative() {
			balance = pterm.Red(balance)
		} else {
			balance = pterm.Green(balance)
		}
		tableData = append(tableData, []string{
			acc.Name,
			acc.OpeningDate.Format(model.DateLayout),
			balance,
		})
	}
	return tableData
}

func RenderAccountList(accounts []*model.Account, currency string) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(AccountTableData(accounts, currency)).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}

func RenderAccountSummary(acc *model.Account, currency string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Opening Date"), acc.OpeningDate.Format(model.DateLayout)},
		{pterm.Blue("Opening Balance"), utils.FormatMoney(acc.OpeningBalance, currency)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
