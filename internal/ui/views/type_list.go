package views

import (
	"fmt"

	"github.com/hance08/clevercash/internal/model"
	"github.com/pterm/pterm"
)

func RenderTypeList(types []*model.TransactionType) error {
	if len(types) == 0 {
		pterm.Warning.Println("No transaction types found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name"}}
	for _, t := range types {
		tableData = append(tableData, []string{fmt.Sprintf("%d", t.ID), t.Name})
	}

	pterm.DefaultSection.Println("Transaction Types")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d types\n", len(types))
	return nil
}
