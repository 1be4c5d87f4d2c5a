package store

import (
	"fmt"

	"github.com/hance08/clevercash/internal/model"
)

func (s *Store) AddTransactionType(name string) (int64, error) {
	result, err := s.db.Exec(`INSERT INTO transaction_types (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to add transaction type '%s': %w", name, ErrTransactionTypeExists)
		}
		return 0, fmt.Errorf("failed to add transaction type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// ListTransactionTypes returns the catalog in insertion order.
func (s *Store) ListTransactionTypes() ([]*model.TransactionType, error) {
	rows, err := s.db.Query(`SELECT id, name FROM transaction_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction types: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var types []*model.TransactionType
	for rows.Next() {
		tt := &model.TransactionType{}
		if err := rows.Scan(&tt.ID, &tt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan transaction type: %w", err)
		}
		types = append(types, tt)
	}

	return types, rows.Err()
}

func (s *Store) DeleteTransactionType(name string) error {
	result, err := s.db.Exec(`DELETE FROM transaction_types WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete transaction type: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("transaction type '%s'", name))
}

func (s *Store) TransactionTypeExists(name string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM transaction_types WHERE name = ?)", name)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transaction type existence: %w", err)
	}
	return exists, nil
}
