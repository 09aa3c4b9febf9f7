package postgres

import (
	"context"
	"fmt"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The transactions
// table is append-only; this repository exposes no update or delete.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, wallet_id, operation_type, amount, balance_before, balance_after, description, reference_id, created_at`

// Create inserts a ledger entry within the given database transaction and
// fills in the generated id and creation timestamp.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	query := `INSERT INTO transactions (wallet_id, operation_type, amount, balance_before, balance_after, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		txn.WalletID, txn.OperationType, txn.Amount,
		txn.BalanceBefore, txn.BalanceAfter, txn.Description, txn.ReferenceID,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByWalletID returns the wallet's ledger entries, newest first. The id
// tiebreak keeps entries created in the same instant in insertion order.
func (r *TransactionRepo) ListByWalletID(ctx context.Context, walletID int64, page ports.Page) ([]domain.Transaction, error) {
	page = page.Normalize()
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// GetStatistics aggregates the wallet's ledger history.
func (r *TransactionRepo) GetStatistics(ctx context.Context, walletID int64) (*ports.TransactionStatistics, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE operation_type = 'DEPOSIT'), 0),
		COALESCE(SUM(amount) FILTER (WHERE operation_type = 'WITHDRAW'), 0),
		COUNT(*)
		FROM transactions WHERE wallet_id = $1`

	stats := &ports.TransactionStatistics{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&stats.TotalDeposits, &stats.TotalWithdrawals, &stats.TransactionCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get transaction statistics: %w", err)
	}
	return stats, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.WalletID, &t.OperationType, &t.Amount,
		&t.BalanceBefore, &t.BalanceAfter, &t.Description, &t.ReferenceID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
