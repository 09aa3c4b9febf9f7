package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet() *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		UUID:      uuid.New(),
		Balance:   decimal.RequireFromString("100.00"),
		Currency:  "USD",
		Status:    domain.WalletStatusActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "uuid", "balance", "currency", "status", "version", "created_at", "updated_at",
	}).AddRow(w.ID, w.UUID, w.Balance, w.Currency, w.Status, w.Version, w.CreatedAt, w.UpdatedAt)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery("INSERT INTO wallets").
		WithArgs(w.UUID, w.Balance, w.Currency, w.Status, w.Version, w.CreatedAt, w.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = repo.Create(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Create_DuplicateUUID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery("INSERT INTO wallets").
		WithArgs(w.UUID, w.Balance, w.Currency, w.Status, w.Version, w.CreatedAt, w.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "wallets_uuid_key"})

	err = repo.Create(context.Background(), w)
	assert.ErrorIs(t, err, ports.ErrDuplicateWallet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUUID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()
	w.ID = 42

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE uuid").
		WithArgs(w.UUID).
		WillReturnRows(walletRow(w))

	got, err := repo.GetByUUID(context.Background(), w.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.UUID, got.UUID)
	assert.True(t, got.Balance.Equal(w.Balance))
	assert.Equal(t, domain.WalletStatusActive, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUUID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	walletUUID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE uuid").
		WithArgs(walletUUID).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByUUID(context.Background(), walletUUID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUUIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()
	w.ID = 42

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE uuid .+ FOR UPDATE").
		WithArgs(w.UUID).
		WillReturnRows(walletRow(w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByUUIDForUpdate(context.Background(), tx, w.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, int64(1), got.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUUIDForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	walletUUID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE uuid .+ FOR UPDATE").
		WithArgs(walletUUID).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByUUIDForUpdate(context.Background(), tx, walletUUID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	balance := decimal.RequireFromString("150.00")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET balance").
		WithArgs(balance, int64(42), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, 42, balance, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalance_VersionMismatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	balance := decimal.RequireFromString("150.00")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET balance").
		WithArgs(balance, int64(42), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, 42, balance, 1)
	assert.ErrorIs(t, err, ErrVersionMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	walletUUID := uuid.New()

	mock.ExpectExec("UPDATE wallets SET status").
		WithArgs(domain.WalletStatusFrozen, walletUUID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), walletUUID, domain.WalletStatusFrozen)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	walletUUID := uuid.New()

	mock.ExpectExec("UPDATE wallets SET status").
		WithArgs(domain.WalletStatusFrozen, walletUUID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), walletUUID, domain.WalletStatusFrozen)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ListByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w1 := newTestWallet()
	w1.ID = 1
	w2 := newTestWallet()
	w2.ID = 2

	rows := pgxmock.NewRows([]string{
		"id", "uuid", "balance", "currency", "status", "version", "created_at", "updated_at",
	}).
		AddRow(w2.ID, w2.UUID, w2.Balance, w2.Currency, w2.Status, w2.Version, w2.CreatedAt, w2.UpdatedAt).
		AddRow(w1.ID, w1.UUID, w1.Balance, w1.Currency, w1.Status, w1.Version, w1.CreatedAt, w1.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE status").
		WithArgs(domain.WalletStatusActive, 100, 0).
		WillReturnRows(rows)

	got, err := repo.ListByStatus(context.Background(), domain.WalletStatusActive, ports.Page{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ListByStatus_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE status").
		WithArgs(domain.WalletStatusClosed, 100, 0).
		WillReturnError(errors.New("connection reset"))

	got, err := repo.ListByStatus(context.Background(), domain.WalletStatusClosed, ports.Page{})
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
