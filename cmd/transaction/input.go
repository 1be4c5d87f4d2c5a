package transaction

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/spf13/cobra"
)

type txFlags struct {
	Account     string
	Type        string
	Date        string
	Description string
	Payment     string
	Deposit     string
}

func bindTxFlags(cmd *cobra.Command, flags *txFlags) {
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&flags.Description, "desc", "m", "", "Description")
	cmd.Flags().StringVarP(&flags.Payment, "payment", "p", "", "Payment amount (money going out)")
	cmd.Flags().StringVar(&flags.Deposit, "deposit", "", "Deposit amount (money coming in)")
}

func anyTxFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"account", "type", "date", "desc", "payment", "deposit"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func toInput(answers prompts.TransactionAnswers, today time.Time) (service.TransactionInput, error) {
	date, err := validation.ParseDate(answers.Date, today)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("date: %w", err)
	}

	payment, err := validation.ParseAmount(answers.Payment)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("payment: %w", err)
	}

	deposit, err := validation.ParseAmount(answers.Deposit)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("deposit: %w", err)
	}

	return service.TransactionInput{
		Account:     answers.Account,
		Type:        answers.Type,
		Date:        date,
		Description: answers.Description,
		Payment:     payment,
		Deposit:     deposit,
	}, nil
}

func toAnswers(tx *model.Transaction) prompts.TransactionAnswers {
	answers := prompts.TransactionAnswers{
		Account:     tx.Account,
		Type:        tx.Type,
		Date:        tx.Date.Format(model.DateLayout),
		Description: tx.Description,
	}
	if !tx.PaymentAmount.IsZero() {
		answers.Payment = tx.PaymentAmount.StringFixed(2)
	}
	if !tx.DepositAmount.IsZero() {
		answers.Deposit = tx.DepositAmount.StringFixed(2)
	}
	return answers
}

// mergeFlags overrides answers with the flags that were set on the command line.
func mergeFlags(answers prompts.TransactionAnswers, flags *txFlags, changed func(string) bool) prompts.TransactionAnswers {
	if changed("account") {
		answers.Account = flags.Account
	}
	if changed("type") {
		answers.Type = flags.Type
	}
	if changed("date") {
		answers.Date = flags.Date
	}
	if changed("desc") {
		answers.Description = flags.Description
	}
	if changed("payment") {
		answers.Payment = flags.Payment
	}
	if changed("deposit") {
		answers.Deposit = flags.Deposit
	}
	return answers
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID: %s", raw)
	}
	return id, nil
}

// formChoices loads the account and type names offered by the form.
func formChoices(svc *service.Service) ([]string, []string, error) {
	accounts, err := svc.Account.GetAllAccounts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	names := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		names = append(names, acc.Name)
	}

	types, err := svc.TransactionType.TypeNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get transaction types: %w", err)
	}
	return names, types, nil
}
