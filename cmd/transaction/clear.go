package transaction

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type clearRunner struct {
	svc *service.Service
	yes bool
}

func NewClearCmd(svc *service.Service) *cobra.Command {
	runner := &clearRunner{svc: svc}

	cmd := &cobra.Command{
		Use:          "clear",
		Short:        "Delete every transaction",
		Long:         `Delete every posted transaction. Accounts, types and schedules are kept.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (r *clearRunner) Run() error {
	views.RenderDeleteWarning("every transaction")
	views.RenderIrreversible()

	if !r.yes {
		confirmed, err := ui.Confirm("Do you want to delete all transactions?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Clear cancelled")
			return nil
		}
	}

	n, err := r.svc.Transaction.ClearTransactions()
	if err != nil {
		return err
	}

	pterm.Success.Printf("%d transactions deleted\n", n)
	ui.Separator()
	return nil
}
