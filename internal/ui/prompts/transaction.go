package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/clevercash/internal/validation"
)

// TransactionAnswers holds the raw text of the transaction form.
type TransactionAnswers struct {
	Account     string
	Type        string
	Date        string
	Description string
	Payment     string
	Deposit     string
}

// PromptTransactionForm asks for a transaction. Account and type are chosen
// from the existing ones; defaults prefill the form when editing.
func PromptTransactionForm(title string, accounts, types []string, defaults TransactionAnswers) (TransactionAnswers, error) {
	if len(accounts) == 0 {
		return TransactionAnswers{}, fmt.Errorf("no accounts yet, create one with 'clevercash account create'")
	}
	if len(types) == 0 {
		return TransactionAnswers{}, fmt.Errorf("no transaction types yet, add one with 'clevercash type add'")
	}

	answers := TransactionAnswers{Account: defaults.Account, Type: defaults.Type}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			selectField("Account:", accounts, &answers.Account),
			selectField("Transaction Type:", types, &answers.Type),
		),
		huh.NewGroup(
			inputField("Date (YYYY-MM-DD):", "Press Enter for the shown date", defaults.Date, &answers.Date, validation.ValidateDateInput),
			inputField("Description:", "", defaults.Description, &answers.Description, validation.ValidateDescription),
			inputField("Payment Amount:", "Money going out, leave empty for none", defaults.Payment, &answers.Payment, validation.ValidateAmountInput),
			inputField("Deposit Amount:", "Money coming in, leave empty for none", defaults.Deposit, &answers.Deposit, validation.ValidateAmountInput),
		),
	)

	if err := form.Run(); err != nil {
		return TransactionAnswers{}, err
	}

	answers.Date = orDefault(answers.Date, defaults.Date)
	answers.Description = orDefault(answers.Description, defaults.Description)
	answers.Payment = orDefault(answers.Payment, defaults.Payment)
	answers.Deposit = orDefault(answers.Deposit, defaults.Deposit)
	return answers, nil
}
