package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo   store.Repository
	config *config.Config
	logger *log.Logger
}

func NewTransactionService(repo store.Repository, cfg *config.Config, logger *log.Logger) *TransactionService {
	return &TransactionService{repo: repo, config: cfg, logger: logger.WithComponent(log.ComponentTransaction)}
}

type TransactionInput struct {
	Account     string
	Type        string
	Date        time.Time
	Description string
	Payment     decimal.Decimal
	Deposit     decimal.Decimal
}

// Report lists the transactions of one account or one type, newest first.
type Report struct {
	Subject      string
	Currency     string
	Transactions []*model.Transaction
	TotalPayment decimal.Decimal
	TotalDeposit decimal.Decimal
}

func (ts *TransactionService) AddTransaction(in TransactionInput) (*model.Transaction, error) {
	tx, err := ts.buildTransaction(in)
	if err != nil {
		return nil, err
	}

	id, err := ts.repo.AddTransaction(tx)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	ts.logger.Info("transaction added", log.FieldOperation, log.OpCreate, log.FieldID, id)
	return tx, nil
}

func (ts *TransactionService) EditTransaction(id int64, in TransactionInput) (*model.Transaction, error) {
	tx, err := ts.buildTransaction(in)
	if err != nil {
		return nil, err
	}

	if err := ts.repo.UpdateTransaction(id, tx); err != nil {
		return nil, err
	}
	tx.ID = id

	ts.logger.Info("transaction updated", log.FieldOperation, log.OpUpdate, log.FieldID, id)
	return tx, nil
}

func (ts *TransactionService) DeleteTransaction(id int64) error {
	if err := ts.repo.DeleteTransaction(id); err != nil {
		return err
	}
	ts.logger.Info("transaction deleted", log.FieldOperation, log.OpDelete, log.FieldID, id)
	return nil
}

// ClearTransactions removes every posted transaction and returns how many
// were removed.
func (ts *TransactionService) ClearTransactions() (int64, error) {
	n, err := ts.repo.ClearTransactions()
	if err != nil {
		return 0, err
	}
	ts.logger.Info("transactions cleared", log.FieldOperation, log.OpClear, log.FieldCount, n)
	return n, nil
}

func (ts *TransactionService) GetTransaction(id int64) (*model.Transaction, error) {
	return ts.repo.GetTransaction(id)
}

func (ts *TransactionService) GetAllTransactions() ([]*model.Transaction, error) {
	txs, err := ts.repo.ListTransactions()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(txs)
	return txs, nil
}

// SearchTransactions matches text against descriptions, ignoring case.
// An empty text returns every transaction.
func (ts *TransactionService) SearchTransactions(text string) ([]*model.Transaction, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	return ts.filter(func(tx *model.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), needle)
	})
}

func (ts *TransactionService) ReportByAccount(account string) (*Report, error) {
	exists, err := ts.repo.AccountExists(account)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account '%s': %w", account, ErrUnknownAccount)
	}

	txs, err := ts.filter(func(tx *model.Transaction) bool { return tx.Account == account })
	if err != nil {
		return nil, err
	}
	return ts.newReport(account, txs), nil
}

func (ts *TransactionService) ReportByType(txType string) (*Report, error) {
	exists, err := ts.repo.TransactionTypeExists(txType)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("transaction type '%s': %w", txType, ErrUnknownType)
	}

	txs, err := ts.filter(func(tx *model.Transaction) bool { return tx.Type == txType })
	if err != nil {
		return nil, err
	}
	return ts.newReport(txType, txs), nil
}

func (ts *TransactionService) filter(keep func(*model.Transaction) bool) ([]*model.Transaction, error) {
	txs, err := ts.GetAllTransactions()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if keep(tx) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func (ts *TransactionService) newReport(subject string, txs []*model.Transaction) *Report {
	report := &Report{
		Subject:      subject,
		Transactions: txs,
		TotalPayment: decimal.Zero,
		TotalDeposit: decimal.Zero,
	}
	if ts.config != nil {
		report.Currency = ts.config.Defaults.Currency
	}

	for _, tx := range txs {
		report.TotalPayment = report.TotalPayment.Add(tx.PaymentAmount)
		report.TotalDeposit = report.TotalDeposit.Add(tx.DepositAmount)
	}
	return report
}

func (ts *TransactionService) buildTransaction(in TransactionInput) (*model.Transaction, error) {
	account := strings.TrimSpace(in.Account)
	txType := strings.TrimSpace(in.Type)
	desc := strings.TrimSpace(in.Description)

	if err := validation.ValidateDescription(desc); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, validation.ErrInvalidDate
	}
	if in.Payment.IsNegative() || in.Deposit.IsNegative() {
		return nil, validation.ErrInvalidAmount
	}
	if in.Payment.IsZero() && in.Deposit.IsZero() {
		return nil, validation.ErrAmountsRequired
	}

	if err := checkReferences(ts.repo, account, txType); err != nil {
		return nil, err
	}

	return &model.Transaction{
		Account:       account,
		Type:          txType,
		Date:          model.DateOf(in.Date),
		Description:   desc,
		PaymentAmount: in.Payment,
		DepositAmount: in.Deposit,
	}, nil
}

type referenceChecker interface {
	AccountExists(name string) (bool, error)
	TransactionTypeExists(name string) (bool, error)
}

// checkReferences makes sure the account and transaction type named by a
// transaction or schedule exist.
func checkReferences(repo referenceChecker, account, txType string) error {
	if err := validation.ValidateName(account); err != nil {
		return fmt.Errorf("account: %w", err)
	}
	if err := validation.ValidateName(txType); err != nil {
		return fmt.Errorf("transaction type: %w", err)
	}

	exists, err := repo.AccountExists(account)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("account '%s': %w", account, ErrUnknownAccount)
	}

	exists, err = repo.TransactionTypeExists(txType)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("transaction type '%s': %w", txType, ErrUnknownType)
	}
	return nil
}

func sortNewestFirst(txs []*model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].ID > txs[j].ID
	})
}
