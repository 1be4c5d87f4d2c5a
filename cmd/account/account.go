package account

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "It can create, edit, delete account and show the list of all accounts.",
		Long:  `It can create, edit, delete account and show the list of all accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewEditCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))

	return accountCmd
}
