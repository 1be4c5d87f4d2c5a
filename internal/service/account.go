package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo   store.AccountStore
	logger *log.Logger
}

func NewAccountService(repo store.AccountStore, logger *log.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger.WithComponent(log.ComponentAccount)}
}

type AccountInput struct {
	Name           string
	OpeningDate    time.Time
	OpeningBalance decimal.Decimal
}

func (as *AccountService) CreateAccount(in AccountInput) (*model.Account, error) {
	acc, err := as.buildAccount(in)
	if err != nil {
		return nil, err
	}

	exists, err := as.repo.AccountExists(acc.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("account '%s': %w", acc.Name, store.ErrAccountExists)
	}

	id, err := as.repo.AddAccount(acc)
	if err != nil {
		return nil, err
	}
	acc.ID = id

	as.logger.Info("account created", log.FieldOperation, log.OpCreate, log.FieldName, acc.Name)
	return acc, nil
}

// UpdateAccount replaces the account called oldName. Renaming onto an
// existing account is refused.
func (as *AccountService) UpdateAccount(oldName string, in AccountInput) (*model.Account, error) {
	acc, err := as.buildAccount(in)
	if err != nil {
		return nil, err
	}

	if acc.Name != oldName {
		exists, err := as.repo.AccountExists(acc.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("account '%s': %w", acc.Name, store.ErrAccountExists)
		}
	}

	if err := as.repo.UpdateAccount(oldName, acc); err != nil {
		return nil, err
	}

	as.logger.Info("account updated", log.FieldOperation, log.OpUpdate, log.FieldName, acc.Name)
	return acc, nil
}

func (as *AccountService) DeleteAccount(name string) error {
	if err := as.repo.DeleteAccount(name); err != nil {
		return err
	}
	as.logger.Info("account deleted", log.FieldOperation, log.OpDelete, log.FieldName, name)
	return nil
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.ListAccounts()
}

func (as *AccountService) GetAccountByName(name string) (*model.Account, error) {
	return as.repo.GetAccountByName(name)
}

func (as *AccountService) CheckAccountExists(name string) (bool, error) {
	return as.repo.AccountExists(name)
}

func (as *AccountService) CountAccounts() (int, error) {
	accounts, err := as.repo.ListAccounts()
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}

func (as *AccountService) buildAccount(in AccountInput) (*model.Account, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if in.OpeningDate.IsZero() {
		return nil, validation.ErrInvalidDate
	}

	return &model.Account{
		Name:           name,
		OpeningDate:    model.DateOf(in.OpeningDate),
		OpeningBalance: in.OpeningBalance,
	}, nil
}
