package ports

import (
	"context"
	"time"

	"wallet-ledger-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService is the wallet ledger engine: the sole authority for mutating
// wallet balances. It guarantees that concurrent mutations of the same wallet
// serialize on the store's row lock and that the balance update and the
// ledger append commit in one atomic unit.
type LedgerService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletUUID uuid.UUID) (*domain.Wallet, error)
	GetBalance(ctx context.Context, walletUUID uuid.UUID) (*BalanceSnapshot, error)
	PerformOperation(ctx context.Context, walletUUID uuid.UUID, req OperationRequest) (*OperationResult, error)
	ListTransactions(ctx context.Context, walletUUID uuid.UUID, page Page) ([]domain.Transaction, error)
	UpdateWalletStatus(ctx context.Context, walletUUID uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error)
	GetStatistics(ctx context.Context, walletUUID uuid.UUID) (*WalletStatistics, error)
	ListWalletsByStatus(ctx context.Context, status domain.WalletStatus, page Page) ([]domain.Wallet, error)
}

// CreateWalletRequest holds input for wallet creation. WalletUUID is optional;
// a fresh identifier is generated when nil. Currency defaults from config.
type CreateWalletRequest struct {
	WalletUUID     *uuid.UUID
	InitialBalance decimal.Decimal
	Currency       string
}

// OperationRequest holds validated input for one balance mutation.
type OperationRequest struct {
	OperationType domain.OperationType
	Amount        decimal.Decimal
	Description   *string
	ReferenceID   *string
}

// OperationResult is the committed outcome of one balance mutation.
type OperationResult struct {
	Wallet      domain.Wallet      `json:"wallet"`
	Transaction domain.Transaction `json:"transaction"`
}

// BalanceSnapshot is a read-only view of a wallet's balance.
type BalanceSnapshot struct {
	WalletUUID  uuid.UUID           `json:"wallet_uuid"`
	Balance     decimal.Decimal     `json:"balance"`
	Currency    string              `json:"currency"`
	Status      domain.WalletStatus `json:"status"`
	LastUpdated time.Time           `json:"last_updated"`
}

// WalletStatistics aggregates a wallet's ledger history.
type WalletStatistics struct {
	WalletUUID       uuid.UUID       `json:"wallet_uuid"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TransactionCount int64           `json:"transaction_count"`
}

// ReferenceCache is a best-effort cache mapping a wallet-scoped reference id
// to the serialized result of the operation that carried it. A hit lets a
// caller replay a submission without double-applying it. Failures are logged
// and ignored: correctness never depends on the cache.
type ReferenceCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
