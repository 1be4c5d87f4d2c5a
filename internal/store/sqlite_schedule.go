package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/clevercash/internal/model"
)

const scheduleColumns = `id, schedule_name, account, transaction_type, frequency, due_day, payment_amount`

func (s *Store) AddScheduledTransaction(st *model.ScheduledTransaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO scheduled_transactions (schedule_name, account, transaction_type, frequency, due_day, payment_amount)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare scheduled transaction SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		st.ScheduleName, st.Account, st.Type, string(st.Frequency), st.DueDay, toCents(st.PaymentAmount),
	).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to add schedule '%s': %w", st.ScheduleName, ErrScheduleExists)
		}
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("failed to add schedule '%s': %w", st.ScheduleName, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert scheduled transaction : %w", err)
	}

	return newID, nil
}

// ListScheduledTransactions returns the schedules ordered by due day.
func (s *Store) ListScheduledTransactions() ([]*model.ScheduledTransaction, error) {
	rows, err := s.db.Query(`
		SELECT ` + scheduleColumns + `
		FROM scheduled_transactions
		ORDER BY due_day, schedule_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var schedules []*model.ScheduledTransaction
	for rows.Next() {
		st, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, st)
	}

	return schedules, rows.Err()
}

func (s *Store) GetScheduledTransaction(name string) (*model.ScheduledTransaction, error) {
	row := s.db.QueryRow(`SELECT `+scheduleColumns+` FROM scheduled_transactions WHERE schedule_name = ?`, name)

	st, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule '%s': %w", name, ErrRecordNotFound)
		}
		return nil, err
	}

	return st, nil
}

func (s *Store) UpdateScheduledTransaction(oldName string, st *model.ScheduledTransaction) error {
	result, err := s.db.Exec(`
		UPDATE scheduled_transactions
		SET schedule_name = ?, account = ?, transaction_type = ?, frequency = ?, due_day = ?, payment_amount = ?
		WHERE schedule_name = ?
	`, st.ScheduleName, st.Account, st.Type, string(st.Frequency), st.DueDay, toCents(st.PaymentAmount), oldName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to rename schedule to '%s': %w", st.ScheduleName, ErrScheduleExists)
		}
		if isConstraintViolation(err) {
			return fmt.Errorf("failed to update schedule '%s': %w", oldName, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to update scheduled transaction: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("schedule '%s'", oldName))
}

func (s *Store) DeleteScheduledTransaction(name string) error {
	result, err := s.db.Exec(`DELETE FROM scheduled_transactions WHERE schedule_name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled transaction: %w", err)
	}

	return checkAffected(result, fmt.Sprintf("schedule '%s'", name))
}

func (s *Store) ScheduleExists(name string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM scheduled_transactions WHERE schedule_name = ?)", name)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check schedule existence: %w", err)
	}
	return exists, nil
}

func (s *Store) ClearScheduledTransactions() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM scheduled_transactions`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear scheduled transactions: %w", err)
	}
	return result.RowsAffected()
}

func scanSchedule(row rowScanner) (*model.ScheduledTransaction, error) {
	st := &model.ScheduledTransaction{}
	var frequency string
	var payment int64

	err := row.Scan(&st.ID, &st.ScheduleName, &st.Account, &st.Type, &frequency, &st.DueDay, &payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan scheduled transaction: %w", err)
	}

	freq, err := model.ParseFrequency(frequency)
	if err != nil {
		return nil, fmt.Errorf("schedule #%d: %v: %w", st.ID, err, ErrInvalidRecord)
	}
	st.Frequency = freq
	st.PaymentAmount = fromCents(payment)

	return st, nil
}
