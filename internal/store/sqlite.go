package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hance08/clevercash/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type Store struct {
	db DBTX
}

var _ Repository = (*Store)(nil)

func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db}, nil
}

// ExecTx runs fn against a store bound to a single database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (s *Store) ExecTx(fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &Store{db: tx}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique)
	}
	return false
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.Code, sqlite.ErrConstraint)
	}
	return false
}

// toCents stores money as integer cents, rounding half away from zero.
func toCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func formatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

func parseDate(raw string, table string, id int64) (time.Time, error) {
	t, err := model.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s #%d has date '%s': %w", table, id, raw, ErrInvalidRecord)
	}
	return t, nil
}

func checkAffected(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrRecordNotFound)
	}

	return nil
}
