package prompts

import "github.com/charmbracelet/huh"

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(withDefault(defaultValue, validator))
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// inputField builds a text input whose empty answer means def. The
// validator sees def when the input is left empty.
func inputField(title, description, def string, value *string, validator func(string) error) *huh.Input {
	input := huh.NewInput().
		Title(title).
		Value(value)

	if description != "" {
		input.Description(description)
	}
	if def != "" {
		input.Placeholder(def)
	}
	if validator != nil {
		input.Validate(withDefault(def, validator))
	}
	return input
}

// selectField builds a select over options with current preselected.
func selectField(title string, options []string, value *string) *huh.Select[string] {
	if *value == "" && len(options) > 0 {
		*value = options[0]
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(value).
		Height(selectHeight(len(options)))
}

func withDefault(def string, validator func(string) error) func(string) error {
	return func(s string) error {
		if s == "" {
			s = def
		}
		return validator(s)
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func selectHeight(n int) int {
	if n > 10 {
		return 12
	}
	return n + 2
}
