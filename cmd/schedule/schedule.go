package schedule

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/spf13/cobra"
)

func NewScheduleCmd(svc *service.Service) *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Manage scheduled (recurring) transactions",
		Long: `Manage recurring monthly payments such as rent or subscriptions.
Each scheduled transaction has a unique name and a due day of the month.`,
	}

	scheduleCmd.AddCommand(NewAddCmd(svc))
	scheduleCmd.AddCommand(NewListCmd(svc))
	scheduleCmd.AddCommand(NewEditCmd(svc))
	scheduleCmd.AddCommand(NewDeleteCmd(svc))
	scheduleCmd.AddCommand(NewSearchCmd(svc))
	scheduleCmd.AddCommand(NewClearCmd(svc))

	return scheduleCmd
}
