package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "data", "clevercash.db")
	s, err := NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewStore_MigratesTwice(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clevercash.db")
	migrations := os.DirFS(filepath.Join("..", ".."))

	first, err := NewStore(dbPath, migrations)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dbPath, migrations)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestAccounts(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddAccount(&model.Account{Name: "Savings", OpeningDate: model.NewDate(2023, time.January, 2), OpeningBalance: dec("10.50")})
	require.NoError(t, err)
	_, err = s.AddAccount(&model.Account{Name: "Checking", OpeningDate: model.NewDate(2024, time.March, 1), OpeningBalance: dec("1200")})
	require.NoError(t, err)

	_, err = s.AddAccount(&model.Account{Name: "Checking", OpeningDate: model.NewDate(2024, time.March, 1)})
	assert.ErrorIs(t, err, ErrAccountExists)

	accounts, err := s.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name, "newest opening date first")
	assert.True(t, accounts[1].OpeningBalance.Equal(dec("10.50")))

	exists, err := s.AccountExists("Savings")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.UpdateAccount("Savings", &model.Account{Name: "Rainy Day", OpeningDate: model.NewDate(2023, time.January, 2), OpeningBalance: dec("11")}))
	acc, err := s.GetAccountByName("Rainy Day")
	require.NoError(t, err)
	assert.Equal(t, "11.00", acc.OpeningBalance.StringFixed(2))

	err = s.UpdateAccount("Rainy Day", &model.Account{Name: "Checking", OpeningDate: model.NewDate(2023, time.January, 2)})
	assert.ErrorIs(t, err, ErrAccountExists)

	require.NoError(t, s.DeleteAccount("Rainy Day"))
	_, err = s.GetAccountByName("Rainy Day")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteAccount("Rainy Day"), ErrRecordNotFound)
}

func TestTransactionTypes(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Rent", "Food"} {
		_, err := s.AddTransactionType(name)
		require.NoError(t, err)
	}
	_, err := s.AddTransactionType("Rent")
	assert.ErrorIs(t, err, ErrTransactionTypeExists)

	types, err := s.ListTransactionTypes()
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Rent", types[0].Name)
	assert.Equal(t, "Food", types[1].Name)

	exists, err := s.TransactionTypeExists("Food")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteTransactionType("Food"))
	exists, err = s.TransactionTypeExists("Food")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactions(t *testing.T) {
	s := newTestStore(t)

	older := &model.Transaction{
		Account: "Checking", Type: "Food", Date: model.NewDate(2024, time.March, 5),
		Description: "Groceries", PaymentAmount: dec("50.25"), DepositAmount: decimal.Zero,
	}
	newer := &model.Transaction{
		Account: "Checking", Type: "Salary", Date: model.NewDate(2024, time.March, 28),
		Description: "Payday", PaymentAmount: decimal.Zero, DepositAmount: dec("3000"),
	}

	olderID, err := s.AddTransaction(older)
	require.NoError(t, err)
	_, err = s.AddTransaction(newer)
	require.NoError(t, err)

	txs, err := s.ListTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Payday", txs[0].Description)
	assert.Equal(t, "50.25", txs[1].PaymentAmount.StringFixed(2))
	assert.True(t, txs[1].Date.Equal(older.Date))

	older.Description = "Groceries and wine"
	older.PaymentAmount = dec("61")
	require.NoError(t, s.UpdateTransaction(olderID, older))

	got, err := s.GetTransaction(olderID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries and wine", got.Description)
	assert.Equal(t, "61.00", got.PaymentAmount.StringFixed(2))

	require.NoError(t, s.DeleteTransaction(olderID))
	_, err = s.GetTransaction(olderID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, s.UpdateTransaction(olderID, older), ErrRecordNotFound)

	cleared, err := s.ClearTransactions()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)
}

func TestTransactions_CorruptDateIsInvalidRecord(t *testing.T) {
	s := newTestStore(t)

	_, err := s.db.Exec(`INSERT INTO transactions (account, transaction_type, transaction_date) VALUES ('Checking', 'Food', '05/03/2024')`)
	require.NoError(t, err)

	_, err = s.ListTransactions()
	assert.True(t, errors.Is(err, ErrInvalidRecord), "got %v", err)
}

func TestScheduledTransactions(t *testing.T) {
	s := newTestStore(t)

	rent := &model.ScheduledTransaction{
		ScheduleName: "Rent", Account: "Checking", Type: "Housing",
		Frequency: model.FrequencyMonthly, DueDay: 28, PaymentAmount: dec("1000"),
	}
	gym := &model.ScheduledTransaction{
		ScheduleName: "Gym", Account: "Card", Type: "Health",
		Frequency: model.FrequencyMonthly, DueDay: 3, PaymentAmount: dec("29.99"),
	}
	_, err := s.AddScheduledTransaction(rent)
	require.NoError(t, err)
	_, err = s.AddScheduledTransaction(gym)
	require.NoError(t, err)

	_, err = s.AddScheduledTransaction(rent)
	assert.ErrorIs(t, err, ErrScheduleExists)

	_, err = s.AddScheduledTransaction(&model.ScheduledTransaction{
		ScheduleName: "Broken", Account: "Card", Type: "Health",
		Frequency: model.FrequencyMonthly, DueDay: 32, PaymentAmount: dec("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	list, err := s.ListScheduledTransactions()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gym", list[0].ScheduleName, "ordered by due day")
	assert.Equal(t, model.FrequencyMonthly, list[0].Frequency)
	assert.Equal(t, "29.99", list[0].PaymentAmount.StringFixed(2))

	gym.ScheduleName = "Rent"
	err = s.UpdateScheduledTransaction("Gym", gym)
	assert.ErrorIs(t, err, ErrScheduleExists)

	gym.ScheduleName = "Gym Membership"
	gym.DueDay = 4
	require.NoError(t, s.UpdateScheduledTransaction("Gym", gym))

	got, err := s.GetScheduledTransaction("Gym Membership")
	require.NoError(t, err)
	assert.Equal(t, 4, got.DueDay)

	exists, err := s.ScheduleExists("Gym")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.DeleteScheduledTransaction("Rent"))
	assert.ErrorIs(t, s.DeleteScheduledTransaction("Rent"), ErrRecordNotFound)

	n, err := s.ClearScheduledTransactions()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.ExecTx(func(r Repository) error {
		if _, err := r.AddTransactionType("Rent"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.TransactionTypeExists("Rent")
	require.NoError(t, err)
	assert.False(t, exists)

	err = s.ExecTx(func(r Repository) error {
		_, err := r.AddTransactionType("Rent")
		return err
	})
	require.NoError(t, err)

	exists, err = s.TransactionTypeExists("Rent")
	require.NoError(t, err)
	assert.True(t, exists)
}
