package service

import (
	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/store"
)

type Service struct {
	Config *config.Config

	Account         *AccountService
	TransactionType *TransactionTypeService
	Transaction     *TransactionService
	Schedule        *ScheduleService
	Dashboard       *DashboardService
}

func NewService(repo store.Repository, cfg *config.Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Discard()
	}

	return &Service{
		Config:          cfg,
		Account:         NewAccountService(repo, logger),
		TransactionType: NewTransactionTypeService(repo, logger),
		Transaction:     NewTransactionService(repo, cfg, logger),
		Schedule:        NewScheduleService(repo, logger),
		Dashboard:       NewDashboardService(repo, cfg, logger),
	}
}
