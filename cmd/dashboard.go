package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/spf13/cobra"
)

type dashboardRunner struct {
	svc   *service.Service
	today string
}

func NewDashboardCmd(svc *service.Service) *cobra.Command {
	runner := &dashboardRunner{svc: svc}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show this month's income and expense, the yearly trend and spending by type",
		Long: `Show the dashboard: the income and expense of the current month (scheduled
payments count once their due day is reached), the net expense of every month
of the year with scheduled payments projected forward, and the spending per
transaction type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&runner.today, "today", "", "Compute the dashboard as of this date, YYYY-MM-DD (default today)")
	return cmd
}

func (r *dashboardRunner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	today, err := validation.ParseDate(r.today, time.Now())
	if err != nil {
		return fmt.Errorf("--today: %w", err)
	}

	d, err := r.svc.Dashboard.Load(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	return views.RenderDashboard(d)
}
