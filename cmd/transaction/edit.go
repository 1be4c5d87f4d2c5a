package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	svc   *service.Service
	flags *txFlags
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &txFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction. Flags change only the given fields; without flags an
interactive form prefilled with the current values is shown.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			runner := &editRunner{svc: svc, flags: flags}
			if anyTxFlagChanged(cmd) {
				return runner.Run(id, cmd.Flags().Changed)
			}
			return runner.Run(id, nil)
		},
	}

	bindTxFlags(cmd, flags)
	return cmd
}

// Run edits transaction id. A nil changed function means interactive mode.
func (r *editRunner) Run(id int64, changed func(string) bool) error {
	current, err := r.svc.Transaction.GetTransaction(id)
	if err != nil {
		return err
	}

	answers := toAnswers(current)
	if changed != nil {
		answers = mergeFlags(answers, r.flags, changed)
	} else {
		accounts, types, err := formChoices(r.svc)
		if err != nil {
			return err
		}
		answers, err = prompts.PromptTransactionForm(fmt.Sprintf("Edit Transaction #%d", id), accounts, types, answers)
		if err != nil {
			return err
		}
	}

	input, err := toInput(answers, time.Now())
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.EditTransaction(id, input)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	ui.Separator()
	if err := views.RenderTransactionDetail(tx, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	pterm.Success.Printf("Transaction #%d updated\n", tx.ID)
	return nil
}
