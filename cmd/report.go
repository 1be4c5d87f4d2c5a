package cmd

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewReportCmd(svc *service.Service) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show transactions of one account or one transaction type",
	}

	reportCmd.AddCommand(&cobra.Command{
		Use:          "account <account-name>",
		Short:        "Report the transactions of an account, newest first",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := svc.Transaction.ReportByAccount(args[0])
			if err != nil {
				return err
			}
			return views.RenderReport("Account", report)
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:          "type <type-name>",
		Short:        "Report the transactions of a transaction type, newest first",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := svc.Transaction.ReportByType(args[0])
			if err != nil {
				return err
			}
			return views.RenderReport("Type", report)
		},
	})

	return reportCmd
}
