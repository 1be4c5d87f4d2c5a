package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addRunner struct {
	svc   *service.Service
	flags *txFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &txFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record a one-off transaction. Give a payment for money going out and a
deposit for money coming in. Without flags an interactive form is shown.

Example: clevercash transaction add -a Checking -t Groceries -m "Weekly shop" -p 82.40`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc, flags: flags}
			if anyTxFlagChanged(cmd) {
				return runner.FlagsMode(cmd.Flags().Changed)
			}
			return runner.InteractiveMode()
		},
	}

	bindTxFlags(cmd, flags)
	return cmd
}

func (r *addRunner) FlagsMode(changed func(string) bool) error {
	answers := mergeFlags(prompts.TransactionAnswers{}, r.flags, changed)
	input, err := toInput(answers, time.Now())
	if err != nil {
		return err
	}
	return r.save(input)
}

func (r *addRunner) InteractiveMode() error {
	accounts, types, err := formChoices(r.svc)
	if err != nil {
		return err
	}

	answers, err := prompts.PromptTransactionForm("New Transaction", accounts, types, prompts.TransactionAnswers{
		Date: time.Now().Format(model.DateLayout),
	})
	if err != nil {
		return err
	}

	input, err := toInput(answers, time.Now())
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("Transaction Summary")
	preview := &model.Transaction{
		Account:       input.Account,
		Type:          input.Type,
		Date:          input.Date,
		Description:   input.Description,
		PaymentAmount: input.Payment,
		DepositAmount: input.Deposit,
	}
	if err := views.RenderTransactionDetail(preview, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Save this transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Transaction discarded")
		return nil
	}

	return r.save(input)
}

func (r *addRunner) save(input service.TransactionInput) error {
	tx, err := r.svc.Transaction.AddTransaction(input)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	pterm.Success.Printf("Transaction #%d recorded\n", tx.ID)
	ui.Separator()
	return nil
}
