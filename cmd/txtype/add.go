package txtype

import (
	"fmt"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addRunner struct {
	svc *service.Service
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "add [type-name]",
		Short:        "Add a transaction type",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runner.Run(name)
		},
	}
}

func (r *addRunner) Run(name string) error {
	if name == "" {
		var err error
		name, err = prompts.PromptInput("Transaction Type Name:", "", validation.ValidateName)
		if err != nil {
			return err
		}
	}

	tt, err := r.svc.TransactionType.AddType(name)
	if err != nil {
		return fmt.Errorf("failed to add transaction type: %w", err)
	}

	pterm.Success.Printf("Transaction type '%s' added (ID %d)\n", tt.Name, tt.ID)
	return nil
}
