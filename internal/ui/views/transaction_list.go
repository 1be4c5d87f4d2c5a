package views

import (
	"fmt"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/utils"
	"github.com/pterm/pterm"
)

// TransactionTableData lays transactions out with payments in red and
// deposits in green. Absent amounts stay blank.
func TransactionTableData(txs []*model.Transaction) pterm.TableData {
	tableData := pterm.TableData{
		{"ID", "Date", "Account", "Type", "Description", "Payment", "Deposit"},
	}

	for _, tx := range txs {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format(model.DateLayout),
			tx.Account,
			tx.Type,
			tx.Description,
			pterm.Red(utils.FormatOptionalAmount(tx.PaymentAmount)),
			pterm.Green(utils.FormatOptionalAmount(tx.DepositAmount)),
		})
	}
	return tableData
}

func RenderTransactionList(title string, txs []*model.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(TransactionTableData(txs)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}

func RenderTransactionDetail(tx *model.Transaction, currency string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Date"), tx.Date.Format(model.DateLayout)},
		{pterm.Blue("Account"), tx.Account},
		{pterm.Blue("Type"), tx.Type},
		{pterm.Blue("Description"), tx.Description},
		{pterm.Blue("Payment"), utils.FormatMoney(tx.PaymentAmount, currency)},
		{pterm.Blue("Deposit"), utils.FormatMoney(tx.DepositAmount, currency)},
	}
	if tx.ID != 0 {
		tableData = append(pterm.TableData{{pterm.Blue("ID"), fmt.Sprintf("%d", tx.ID)}}, tableData...)
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
