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

type addRunner struct {
	svc   *service.Service
	flags *scheduleFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a scheduled transaction",
		Long: `Add a recurring monthly payment. It counts towards the current month once
its due day is reached and is projected into every later month of the year.

Example: clevercash schedule add -n Rent -a Checking -t Housing --due-day 1 -p 1200`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc, flags: flags}
			if anyScheduleFlagChanged(cmd) {
				return runner.FlagsMode(cmd.Flags().Changed)
			}
			return runner.InteractiveMode()
		},
	}

	bindScheduleFlags(cmd, flags)
	return cmd
}

func (r *addRunner) FlagsMode(changed func(string) bool) error {
	input, err := toInput(mergeFlags(prompts.ScheduleAnswers{}, r.flags, changed))
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

	answers, err := prompts.PromptScheduleForm("New Scheduled Transaction", accounts, types, prompts.ScheduleAnswers{}, r.uniqueName)
	if err != nil {
		return err
	}

	input, err := toInput(answers)
	if err != nil {
		return err
	}
	return r.save(input)
}

// uniqueName rejects names already used by another schedule while the
// form is still open.
func (r *addRunner) uniqueName(name string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	if _, err := r.svc.Schedule.GetSchedule(name); err == nil {
		return fmt.Errorf("schedule '%s' already exists", name)
	}
	return nil
}

func (r *addRunner) save(input service.ScheduleInput) error {
	st, err := r.svc.Schedule.AddSchedule(input)
	if err != nil {
		return fmt.Errorf("failed to add scheduled transaction: %w", err)
	}

	ui.Separator()
	if err := views.RenderScheduleDetail(st, r.svc.Config.Defaults.Currency); err != nil {
		return err
	}
	pterm.Success.Printf("Scheduled transaction '%s' added\n", st.ScheduleName)
	return nil
}
