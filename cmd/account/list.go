package account

import (
	"fmt"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Long:  `List all accounts, most recently opened first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.RenderAccountList(accounts, r.svc.Config.Defaults.Currency)
}
