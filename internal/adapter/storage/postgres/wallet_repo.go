package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// ErrVersionMismatch reports that the version-guarded balance write hit a
// row whose version moved underneath it. Under FOR UPDATE this cannot happen;
// seeing it means the store contract was violated.
var ErrVersionMismatch = errors.New("wallet version changed during update")

const pgUniqueViolation = "23505"

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, uuid, balance, currency, status, version, created_at, updated_at`

// Create inserts a new wallet and fills in the generated internal id.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (uuid, balance, currency, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		w.UUID, w.Balance, w.Currency, w.Status, w.Version, w.CreatedAt, w.UpdatedAt,
	).Scan(&w.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ports.ErrDuplicateWallet
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUUID fetches a wallet by its external identifier (without locking).
func (r *WalletRepo) GetByUUID(ctx context.Context, walletUUID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE uuid = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, walletUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by uuid: %w", err)
	}
	return w, nil
}

// GetByUUIDForUpdate fetches a wallet with an exclusive row lock. It MUST be
// called within a transaction; the lock is held until that transaction
// commits or rolls back, serializing all mutators of this wallet.
func (r *WalletRepo) GetByUUIDForUpdate(ctx context.Context, tx pgx.Tx, walletUUID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE uuid = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, walletUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance writes the new balance and bumps the version, guarded by the
// version read under the row lock.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID int64, balance decimal.Decimal, expectedVersion int64) error {
	query := `UPDATE wallets SET balance = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3`

	tag, err := tx.Exec(ctx, query, balance, walletID, expectedVersion)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionMismatch
	}
	return nil
}

// UpdateStatus performs a soft lifecycle transition. Wallet rows are never
// deleted.
func (r *WalletRepo) UpdateStatus(ctx context.Context, walletUUID uuid.UUID, status domain.WalletStatus) error {
	query := `UPDATE wallets SET status = $1, updated_at = NOW() WHERE uuid = $2`

	tag, err := r.pool.Exec(ctx, query, status, walletUUID)
	if err != nil {
		return fmt.Errorf("update wallet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletUUID)
	}
	return nil
}

// ListByStatus returns wallets in the given status, newest first.
func (r *WalletRepo) ListByStatus(ctx context.Context, status domain.WalletStatus, page ports.Page) ([]domain.Wallet, error) {
	page = page.Normalize()
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE status = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, status, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list wallets by status: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wallets by status: %w", err)
	}
	return wallets, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UUID, &w.Balance, &w.Currency,
		&w.Status, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
