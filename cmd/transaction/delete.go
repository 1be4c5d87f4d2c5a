package transaction

import (
	"fmt"

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
		Use:          "delete <transaction-id>",
		Short:        "Delete a transaction",
		Long:         `Delete a transaction. This action cannot be undone.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runner.Run(id)
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (r *deleteRunner) Run(id int64) error {
	tx, err := r.svc.Transaction.GetTransaction(id)
	if err != nil {
		return err
	}

	views.RenderDeleteWarning(fmt.Sprintf("transaction #%d", tx.ID))
	if err := views.RenderTransactionDetail(tx, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	views.RenderIrreversible()

	if !r.yes {
		confirmed, err := ui.Confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.DeleteTransaction(id); err != nil {
		return err
	}

	views.RenderDeleteSuccess(fmt.Sprintf("Transaction #%d", id))
	return nil
}
