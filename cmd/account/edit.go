package account

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "edit <account-name>",
		Short: "Edit an account",
		Long: `Rename an account or change its opening date or balance.
Flags change only the given fields; without flags an interactive form
prefilled with the current values is shown.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{svc: svc, flags: flags}
			changed := cmd.Flags().Changed("name") || cmd.Flags().Changed("date") || cmd.Flags().Changed("balance")
			return runner.Run(args[0], changed)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New account name")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "New opening date YYYY-MM-DD")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "New opening balance")

	return cmd
}

func (r *editRunner) Run(name string, useFlags bool) error {
	current, err := r.svc.Account.GetAccountByName(name)
	if err != nil {
		return err
	}

	answers := toAnswers(current)
	if useFlags {
		answers = mergeFlags(answers, r.flags)
	} else {
		answers, err = prompts.PromptAccountForm("Edit Account: "+name, answers, validation.ValidateName)
		if err != nil {
			return err
		}
	}

	input, err := toInput(answers, time.Now())
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.UpdateAccount(name, input)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	ui.Separator()
	if err := views.RenderAccountSummary(acc, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	pterm.Success.Println("Account updated successfully!")
	return nil
}

func mergeFlags(answers prompts.AccountAnswers, flags *createFlags) prompts.AccountAnswers {
	if flags.Name != "" {
		answers.Name = flags.Name
	}
	if flags.Date != "" {
		answers.OpeningDate = flags.Date
	}
	if flags.Balance != "" {
		answers.OpeningBalance = flags.Balance
	}
	return answers
}
