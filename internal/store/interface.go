package store

import "github.com/hance08/clevercash/internal/model"

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=interface.go

type AccountStore interface {
	ListAccounts() ([]*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	AddAccount(acc *model.Account) (int64, error)
	UpdateAccount(oldName string, acc *model.Account) error
	DeleteAccount(name string) error
	AccountExists(name string) (bool, error)
}

type TransactionTypeStore interface {
	ListTransactionTypes() ([]*model.TransactionType, error)
	AddTransactionType(name string) (int64, error)
	DeleteTransactionType(name string) error
	TransactionTypeExists(name string) (bool, error)
}

type TransactionStore interface {
	ListTransactions() ([]*model.Transaction, error)
	GetTransaction(id int64) (*model.Transaction, error)
	AddTransaction(tx *model.Transaction) (int64, error)
	UpdateTransaction(id int64, tx *model.Transaction) error
	DeleteTransaction(id int64) error
	ClearTransactions() (int64, error)
}

type ScheduledTransactionStore interface {
	ListScheduledTransactions() ([]*model.ScheduledTransaction, error)
	GetScheduledTransaction(name string) (*model.ScheduledTransaction, error)
	AddScheduledTransaction(st *model.ScheduledTransaction) (int64, error)
	UpdateScheduledTransaction(oldName string, st *model.ScheduledTransaction) error
	DeleteScheduledTransaction(name string) error
	ScheduleExists(name string) (bool, error)
	ClearScheduledTransactions() (int64, error)
}

type Repository interface {
	AccountStore
	TransactionTypeStore
	TransactionStore
	ScheduledTransactionStore

	ExecTx(fn func(Repository) error) error
	Close() error
}
