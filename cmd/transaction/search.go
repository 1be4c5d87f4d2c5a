package transaction

import (
	"fmt"
	"strings"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSearchCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search transactions by description",
		Long:  `List the transactions whose description contains the text, ignoring case.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			txs, err := svc.Transaction.SearchTransactions(text)
			if err != nil {
				return fmt.Errorf("failed to search transactions: %w", err)
			}
			return views.RenderTransactionList(fmt.Sprintf("Transactions matching %q", text), txs)
		},
	}
}
