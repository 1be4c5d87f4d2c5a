package transaction

import (
	"fmt"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to show (0 for all)")
	return cmd
}

func (r *listRunner) Run() error {
	if r.flags.Limit < 0 {
		return fmt.Errorf("limit can't be negative")
	}

	txs, err := r.svc.Transaction.GetAllTransactions()
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	title := "All transactions"
	if r.flags.Limit > 0 && len(txs) > r.flags.Limit {
		txs = txs[:r.flags.Limit]
		title = fmt.Sprintf("Showing recent transactions (limit: %d)", r.flags.Limit)
	}

	return views.RenderTransactionList(title, txs)
}
