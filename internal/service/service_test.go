package service_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/store/mocks"
	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) (*service.Service, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	return service.NewService(repo, config.NewDefault(), log.Discard()), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// expectReferences makes account and txType resolve as existing.
func expectReferences(repo *mocks.MockRepository, account, txType string) {
	repo.EXPECT().AccountExists(account).Return(true, nil)
	repo.EXPECT().TransactionTypeExists(txType).Return(true, nil)
}
