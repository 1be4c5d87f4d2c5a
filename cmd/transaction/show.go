package transaction

import (
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "show <transaction-id>",
		Short:        "Show a single transaction",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tx, err := svc.Transaction.GetTransaction(id)
			if err != nil {
				return err
			}
			return views.RenderTransactionDetail(tx, svc.Config.Defaults.Currency)
		},
	}
}
