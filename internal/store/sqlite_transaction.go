package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/clevercash/internal/model"
)

const transactionColumns = `id, account, transaction_type, transaction_date, description, payment_amount, deposit_amount`

func (s *Store) AddTransaction(tx *model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (account, transaction_type, transaction_date, description, payment_amount, deposit_amount)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		tx.Account, tx.Type, formatDate(tx.Date), tx.Description,
		toCents(tx.PaymentAmount), toCents(tx.DepositAmount),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction : %w", err)
	}

	return newID, nil
}

// ListTransactions returns every posted transaction, newest first.
func (s *Store) ListTransactions() ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY transaction_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *Store) GetTransaction(id int64) (*model.Transaction, error) {
	row := s.db.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, err
	}

	return tx, nil
}

func (s *Store) UpdateTransaction(id int64, tx *model.Transaction) error {
	result, err := s.db.Exec(`
		UPDATE transactions
		SET account = ?, transaction_type = ?, transaction_date = ?, description = ?,
		    payment_amount = ?, deposit_amount = ?
		WHERE id = ?
	`, tx.Account, tx.Type, formatDate(tx.Date), tx.Description,
		toCents(tx.PaymentAmount), toCents(tx.DepositAmount), id)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("transaction with ID %d", id))
}

func (s *Store) DeleteTransaction(id int64) error {
	result, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("transaction with ID %d", id))
}

// ClearTransactions deletes every posted transaction and reports how many
// were removed.
func (s *Store) ClearTransactions() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM transactions`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear transactions: %w", err)
	}
	return result.RowsAffected()
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var rawDate string
	var payment, deposit sql.NullInt64

	err := row.Scan(&tx.ID, &tx.Account, &tx.Type, &rawDate, &tx.Description, &payment, &deposit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	date, err := parseDate(rawDate, "transaction", tx.ID)
	if err != nil {
		return nil, err
	}
	tx.Date = date
	tx.PaymentAmount = fromCents(payment.Int64)
	tx.DepositAmount = fromCents(deposit.Int64)

	return tx, nil
}
