package account

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name    string
	Date    string
	Balance string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account with its opening date and opening balance.
Without flags the account is created through an interactive form.

Example: clevercash account create -n Checking -d 2024-01-01 -b 1500.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{svc: svc, flags: flags}
			if cmd.Flags().Changed("name") {
				return runner.FlagsMode()
			}
			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Opening date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance, e.g. 1500.00")

	return cmd
}

func (r *createRunner) FlagsMode() error {
	input, err := toInput(prompts.AccountAnswers{
		Name:           r.flags.Name,
		OpeningDate:    r.flags.Date,
		OpeningBalance: r.flags.Balance,
	}, time.Now())
	if err != nil {
		return err
	}

	return r.save(input)
}

func (r *createRunner) InteractiveMode() error {
	answers, err := prompts.PromptAccountForm("New Account", prompts.AccountAnswers{
		OpeningDate:    time.Now().Format(model.DateLayout),
		OpeningBalance: "0",
	}, validation.ValidateName)
	if err != nil {
		return err
	}

	input, err := toInput(answers, time.Now())
	if err != nil {
		return err
	}

	return r.save(input)
}

func (r *createRunner) save(input service.AccountInput) error {
	acc, err := r.svc.Account.CreateAccount(input)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	ui.Separator()
	if err := views.RenderAccountSummary(acc, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	pterm.Success.Println("Account created successfully!")
	return nil
}
