package ports

import (
	"context"
	"errors"

	"wallet-ledger-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrDuplicateWallet is returned by WalletRepository.Create when the external
// wallet identifier is already in use.
var ErrDuplicateWallet = errors.New("wallet with this uuid already exists")

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx participate in an atomic unit and are used for
// pessimistic row-level locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUUID(ctx context.Context, walletUUID uuid.UUID) (*domain.Wallet, error)
	// GetByUUIDForUpdate acquires an exclusive row lock on the wallet,
	// blocking other lockers of the same wallet until tx completes.
	GetByUUIDForUpdate(ctx context.Context, tx pgx.Tx, walletUUID uuid.UUID) (*domain.Wallet, error)
	// UpdateBalance writes the new balance and bumps version by one.
	// expectedVersion must match the stored version or the write is refused.
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID int64, balance decimal.Decimal, expectedVersion int64) error
	UpdateStatus(ctx context.Context, walletUUID uuid.UUID, status domain.WalletStatus) error
	ListByStatus(ctx context.Context, status domain.WalletStatus, page Page) ([]domain.Wallet, error)
}

// TransactionRepository defines persistence operations for ledger entries.
// Entries are append-only: there is deliberately no update or delete.
type TransactionRepository interface {
	// Create inserts the entry within the same atomic unit as the wallet
	// balance update and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
	ListByWalletID(ctx context.Context, walletID int64, page Page) ([]domain.Transaction, error)
	GetStatistics(ctx context.Context, walletID int64) (*TransactionStatistics, error)
}

// Page holds offset pagination bounds for list queries.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// TransactionStatistics holds per-wallet ledger aggregates.
type TransactionStatistics struct {
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TransactionCount int64
}

// DBTransactor provides atomic-unit management over the store.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
