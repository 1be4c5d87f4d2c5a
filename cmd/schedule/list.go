package schedule

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/spf13/cobra"
)

type listRunner struct {
	svc   *service.Service
	today string
}

func NewListCmd(svc *service.Service) *cobra.Command {
	runner := &listRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled transactions by due day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&runner.today, "today", "", "Date used to mark due schedules, YYYY-MM-DD (default today)")
	return cmd
}

func (r *listRunner) Run() error {
	today, err := validation.ParseDate(r.today, time.Now())
	if err != nil {
		return fmt.Errorf("--today: %w", err)
	}

	schedules, err := r.svc.Schedule.GetAllSchedules()
	if err != nil {
		return fmt.Errorf("failed to get scheduled transactions: %w", err)
	}

	return views.RenderScheduleList("Scheduled Transactions", schedules, today.Day())
}
