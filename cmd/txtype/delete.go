package txtype

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
		Use:          "delete <type-name>",
		Short:        "Delete a transaction type",
		Long:         `Delete a transaction type from the catalog. Transactions already using it are kept.`,
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
	exists, err := r.svc.TransactionType.CheckTypeExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("transaction type '%s': %w", name, service.ErrUnknownType)
	}

	views.RenderDeleteWarning("transaction type '" + name + "'")
	views.RenderIrreversible()

	if !r.yes {
		confirmed, err := ui.Confirm("Do you want to delete this transaction type?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.TransactionType.DeleteType(name); err != nil {
		return err
	}

	views.RenderDeleteSuccess("Transaction type '" + name + "'")
	return nil
}
