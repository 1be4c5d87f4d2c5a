package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/store"
	"github.com/hance08/clevercash/internal/store/mocks"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionTypeService_AddType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	tts := service.NewTransactionTypeService(repo, log.Discard())

	repo.EXPECT().TransactionTypeExists("Rent").Return(false, nil)
	repo.EXPECT().AddTransactionType("Rent").Return(int64(3), nil)
	tt, err := tts.AddType(" Rent ")
	require.NoError(t, err)
	assert.Equal(t, &model.TransactionType{ID: 3, Name: "Rent"}, tt)

	repo.EXPECT().TransactionTypeExists("Rent").Return(true, nil)
	_, err = tts.AddType("Rent")
	assert.ErrorIs(t, err, store.ErrTransactionTypeExists)

	_, err = tts.AddType("")
	assert.ErrorIs(t, err, validation.ErrEmptyName)
}

func TestTransactionTypeService_SeedDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	tts := service.NewTransactionTypeService(repo, log.Discard())

	repo.EXPECT().ListTransactionTypes().Return(nil, nil)
	repo.EXPECT().ExecTx(gomock.Any()).DoAndReturn(func(fn func(store.Repository) error) error {
		return fn(repo)
	})
	gomock.InOrder(
		repo.EXPECT().AddTransactionType("Food").Return(int64(1), nil),
		repo.EXPECT().AddTransactionType("Rent").Return(int64(2), nil),
	)
	n, err := tts.SeedDefaults([]string{"Food", "Rent"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	repo.EXPECT().ListTransactionTypes().Return([]*model.TransactionType{{ID: 1, Name: "Food"}}, nil)
	n, err = tts.SeedDefaults([]string{"Food", "Rent"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransactionTypeService_SeedDefaults_FailureInsideTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	txRepo := mocks.NewMockRepository(ctrl)
	tts := service.NewTransactionTypeService(repo, log.Discard())

	repo.EXPECT().ListTransactionTypes().Return(nil, nil)
	repo.EXPECT().ExecTx(gomock.Any()).DoAndReturn(func(fn func(store.Repository) error) error {
		return fn(txRepo)
	})
	gomock.InOrder(
		txRepo.EXPECT().AddTransactionType("Food").Return(int64(1), nil),
		txRepo.EXPECT().AddTransactionType("Rent").Return(int64(0), store.ErrConstraintViolation),
	)

	n, err := tts.SeedDefaults([]string{"Food", "Rent", "Travel"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "Rent")
	assert.Zero(t, n)
}

func TestTransactionTypeService_SeedDefaults_RollsBackPartialSeed(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), "clevercash.db"), os.DirFS(filepath.Join("..", "..")))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	tts := service.NewTransactionTypeService(s, log.Discard())

	_, err = tts.SeedDefaults([]string{"Food", "Food"})
	assert.ErrorIs(t, err, store.ErrTransactionTypeExists)

	types, err := tts.GetAllTypes()
	require.NoError(t, err)
	assert.Empty(t, types)

	n, err := tts.SeedDefaults([]string{"Food", "Rent"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTransactionTypeService_TypeNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	tts := service.NewTransactionTypeService(repo, log.Discard())

	repo.EXPECT().ListTransactionTypes().Return([]*model.TransactionType{{ID: 1, Name: "Rent"}, {ID: 2, Name: "Food"}}, nil)
	names, err := tts.TypeNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Food"}, names)
}
