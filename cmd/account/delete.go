package account

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	runner := &deleteRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "delete <account-name>",
		Short: "Delete an account",
		Long: `Delete an account. Transactions that reference it by name are kept.
This action cannot be undone.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (r *deleteRunner) Run(name string) error {
	acc, err := r.svc.Account.GetAccountByName(name)
	if err != nil {
		return err
	}

	views.RenderDeleteWarning("account '" + acc.Name + "'")
	if err := views.RenderAccountSummary(acc, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	views.RenderIrreversible()

	if !r.yes {
		confirmed, err := ui.Confirm("Do you want to delete this account?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Account.DeleteAccount(acc.Name); err != nil {
		return err
	}

	views.RenderDeleteSuccess("Account '" + acc.Name + "'")
	return nil
}
