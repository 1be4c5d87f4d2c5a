package txtype

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/spf13/cobra"
)

func NewTypeCmd(svc *service.Service) *cobra.Command {
	typeCmd := &cobra.Command{
		Use:     "type",
		Aliases: []string{"types"},
		Short:   "Manage the transaction type catalog",
		Long:    `Add, list and delete the transaction types (Housing, Groceries, ...) used to categorise transactions.`,
	}

	typeCmd.AddCommand(NewAddCmd(svc))
	typeCmd.AddCommand(NewListCmd(svc))
	typeCmd.AddCommand(NewDeleteCmd(svc))

	return typeCmd
}
