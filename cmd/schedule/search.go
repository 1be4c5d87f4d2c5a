package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSearchCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search scheduled transactions by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			schedules, err := svc.Schedule.SearchSchedules(text)
			if err != nil {
				return fmt.Errorf("failed to search scheduled transactions: %w", err)
			}
			return views.RenderScheduleList(fmt.Sprintf("Scheduled transactions matching %q", text), schedules, time.Now().Day())
		},
	}
}
