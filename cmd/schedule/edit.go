package schedule

import (
	"fmt"

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
	flags *scheduleFlags
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "edit <schedule-name>",
		Short: "Edit a scheduled transaction",
		Long: `Edit a scheduled transaction. Renaming is refused when the new name is
already taken. Flags change only the given fields; without flags an
interactive form prefilled with the current values is shown.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{svc: svc, flags: flags}
			if anyScheduleFlagChanged(cmd) {
				return runner.Run(args[0], cmd.Flags().Changed)
			}
			return runner.Run(args[0], nil)
		},
	}

	bindScheduleFlags(cmd, flags)
	return cmd
}

// Run edits the named schedule. A nil changed function means interactive mode.
func (r *editRunner) Run(name string, changed func(string) bool) error {
	current, err := r.svc.Schedule.GetSchedule(name)
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
		answers, err = prompts.PromptScheduleForm("Edit Scheduled Transaction: "+name, accounts, types, answers, validation.ValidateName)
		if err != nil {
			return err
		}
	}

	input, err := toInput(answers)
	if err != nil {
		return err
	}

	st, err := r.svc.Schedule.EditSchedule(name, input)
	if err != nil {
		return fmt.Errorf("failed to update scheduled transaction: %w", err)
	}

	ui.Separator()
	if err := views.RenderScheduleDetail(st, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	pterm.Success.Printf("Scheduled transaction '%s' updated\n", st.ScheduleName)
	return nil
}
