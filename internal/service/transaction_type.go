package service

import (
	"fmt"
	"strings"

	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/validation"
)

type TransactionTypeService struct {
	repo   store.Repository
	logger *log.Logger
}

func NewTransactionTypeService(repo store.Repository, logger *log.Logger) *TransactionTypeService {
	return &TransactionTypeService{repo: repo, logger: logger.WithComponent(log.ComponentType)}
}

func (tts *TransactionTypeService) AddType(name string) (*model.TransactionType, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	exists, err := tts.repo.TransactionTypeExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("transaction type '%s': %w", name, store.ErrTransactionTypeExists)
	}

	id, err := tts.repo.AddTransactionType(name)
	if err != nil {
		return nil, err
	}

	tts.logger.Info("transaction type added", log.FieldOperation, log.OpCreate, log.FieldName, name)
	return &model.TransactionType{ID: id, Name: name}, nil
}

func (tts *TransactionTypeService) GetAllTypes() ([]*model.TransactionType, error) {
	return tts.repo.ListTransactionTypes()
}

// TypeNames returns the catalog names in catalog order.
func (tts *TransactionTypeService) TypeNames() ([]string, error) {
	types, err := tts.repo.ListTransactionTypes()
	if err != nil {
		return nil, err
	}
	return typeNames(types), nil
}

func (tts *TransactionTypeService) DeleteType(name string) error {
	if err := tts.repo.DeleteTransactionType(name); err != nil {
		return err
	}
	tts.logger.Info("transaction type deleted", log.FieldOperation, log.OpDelete, log.FieldName, name)
	return nil
}

func (tts *TransactionTypeService) CheckTypeExists(name string) (bool, error) {
	return tts.repo.TransactionTypeExists(name)
}

// SeedDefaults fills an empty catalog with names in a single database
// transaction, so a failure leaves the catalog empty. A catalog that already
// holds types is left alone. It returns the number of types added.
func (tts *TransactionTypeService) SeedDefaults(names []string) (int, error) {
	existing, err := tts.repo.ListTransactionTypes()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	err = tts.repo.ExecTx(func(r store.Repository) error {
		for _, name := range names {
			if _, err := r.AddTransactionType(name); err != nil {
				return fmt.Errorf("failed to seed transaction type '%s': %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	tts.logger.Debug("transaction types seeded", log.FieldOperation, log.OpSeed, log.FieldCount, len(names))
	return len(names), nil
}

func typeNames(types []*model.TransactionType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names
}
