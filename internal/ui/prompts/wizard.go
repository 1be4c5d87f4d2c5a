package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/clevercash/internal/validation"
)

func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to CleverCash! This is the first run, please set the default currency:").
		Description("Amounts in lists, reports and the dashboard are shown in this currency").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("TWD", "TWD"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	finalCurrency := selection
	if selection == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				return validation.ValidateCurrency(strings.ToUpper(strings.TrimSpace(s)))
			}).
			Run()

		if err != nil {
			return "", err
		}

		finalCurrency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return finalCurrency, nil
}
