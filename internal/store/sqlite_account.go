package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/clevercash/internal/model"
)

func (s *Store) AddAccount(acc *model.Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (name, opening_date, opening_balance)
        VALUES (?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(acc.Name, formatDate(acc.OpeningDate), toCents(acc.OpeningBalance)).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to create account '%s': %w", acc.Name, ErrAccountExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

// ListAccounts returns every account, most recently opened first.
func (s *Store) ListAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT id, name, opening_date, opening_balance
        FROM accounts
        ORDER BY opening_date DESC, name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) GetAccountByName(name string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT id, name, opening_date, opening_balance FROM accounts WHERE name = ?", name)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", name, ErrRecordNotFound)
		}
		return nil, err
	}

	return acc, nil
}

// UpdateAccount replaces the account stored under oldName. Transactions keep
// referring to the old name; renaming does not cascade.
func (s *Store) UpdateAccount(oldName string, acc *model.Account) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET name = ?, opening_date = ?, opening_balance = ?
        WHERE name = ?
    `, acc.Name, formatDate(acc.OpeningDate), toCents(acc.OpeningBalance), oldName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to rename account to '%s': %w", acc.Name, ErrAccountExists)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("account '%s'", oldName))
}

func (s *Store) DeleteAccount(name string) error {
	result, err := s.db.Exec(`DELETE FROM accounts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("account '%s'", name))
}

func (s *Store) AccountExists(name string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE name = ?)", name)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var openingDate string
	var balance int64

	if err := row.Scan(&acc.ID, &acc.Name, &openingDate, &balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	date, err := parseDate(openingDate, "account", acc.ID)
	if err != nil {
		return nil, err
	}
	acc.OpeningDate = date
	acc.OpeningBalance = fromCents(balance)

	return acc, nil
}
