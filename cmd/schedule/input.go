package schedule

import (
	"fmt"
	"strconv"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/spf13/cobra"
)

type scheduleFlags struct {
	Name      string
	Account   string
	Type      string
	Frequency string
	DueDay    string
	Payment   string
}

var flagNames = []string{"name", "account", "type", "frequency", "due-day", "payment"}

func bindScheduleFlags(cmd *cobra.Command, flags *scheduleFlags) {
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Unique schedule name")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type")
	cmd.Flags().StringVarP(&flags.Frequency, "frequency", "f", string(model.FrequencyMonthly), "Recurrence frequency")
	cmd.Flags().StringVar(&flags.DueDay, "due-day", "", "Day of the month the payment is due (1-31)")
	cmd.Flags().StringVarP(&flags.Payment, "payment", "p", "", "Payment amount")
}

func anyScheduleFlagChanged(cmd *cobra.Command) bool {
	for _, name := range flagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func toInput(answers prompts.ScheduleAnswers) (service.ScheduleInput, error) {
	dueDay, err := validation.ParseDueDay(answers.DueDay)
	if err != nil {
		return service.ScheduleInput{}, err
	}

	payment, err := validation.ParseAmount(answers.Payment)
	if err != nil {
		return service.ScheduleInput{}, fmt.Errorf("payment: %w", err)
	}

	return service.ScheduleInput{
		Name:      answers.Name,
		Account:   answers.Account,
		Type:      answers.Type,
		Frequency: answers.Frequency,
		DueDay:    dueDay,
		Payment:   payment,
	}, nil
}

func toAnswers(st *model.ScheduledTransaction) prompts.ScheduleAnswers {
	return prompts.ScheduleAnswers{
		Name:      st.ScheduleName,
		Account:   st.Account,
		Type:      st.Type,
		Frequency: string(st.Frequency),
		DueDay:    strconv.Itoa(st.DueDay),
		Payment:   st.PaymentAmount.StringFixed(2),
	}
}

func mergeFlags(answers prompts.ScheduleAnswers, flags *scheduleFlags, changed func(string) bool) prompts.ScheduleAnswers {
	if changed("name") {
		answers.Name = flags.Name
	}
	if changed("account") {
		answers.Account = flags.Account
	}
	if changed("type") {
		answers.Type = flags.Type
	}
	if changed("frequency") || answers.Frequency == "" {
		answers.Frequency = flags.Frequency
	}
	if changed("due-day") {
		answers.DueDay = flags.DueDay
	}
	if changed("payment") {
		answers.Payment = flags.Payment
	}
	return answers
}

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
