package transaction

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Record, view, edit, search and delete posted transactions.",
	}

	transactionCmd.AddCommand(NewAddCmd(svc))
	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewShowCmd(svc))
	transactionCmd.AddCommand(NewEditCmd(svc))
	transactionCmd.AddCommand(NewDeleteCmd(svc))
	transactionCmd.AddCommand(NewSearchCmd(svc))
	transactionCmd.AddCommand(NewClearCmd(svc))

	return transactionCmd
}
