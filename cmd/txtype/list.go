package txtype

import (
	"fmt"

	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the transaction types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := svc.TransactionType.GetAllTypes()
			if err != nil {
				return fmt.Errorf("failed to get transaction types: %w", err)
			}
			return views.RenderTypeList(types)
		},
	}
}
