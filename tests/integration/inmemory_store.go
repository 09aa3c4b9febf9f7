package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// memoryStore emulates the relational store for end-to-end tests without a
// running PostgreSQL. A single store-wide mutex stands in for the row-level
// exclusive lock: the transactor acquires it on Begin and releases it on
// Commit or Rollback, so atomic units against any wallet serialize exactly
// like FOR UPDATE serializes mutators of one row. Methods called outside an
// atomic unit take the same mutex for the duration of the call.
type memoryStore struct {
	mu           sync.Mutex
	wallets      map[uuid.UUID]*domain.Wallet
	txns         []*domain.Transaction
	nextWalletID int64
	nextTxnID    int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (s *memoryStore) walletByID(id int64) *domain.Wallet {
	for _, w := range s.wallets {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func copyWallet(w *domain.Wallet) *domain.Wallet {
	cp := *w
	return &cp
}

// --- Wallet repository ---

type memoryWalletRepo struct {
	store *memoryStore
}

func (r *memoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.wallets[w.UUID]; exists {
		return ports.ErrDuplicateWallet
	}
	r.store.nextWalletID++
	w.ID = r.store.nextWalletID
	r.store.wallets[w.UUID] = copyWallet(w)
	return nil
}

func (r *memoryWalletRepo) GetByUUID(ctx context.Context, walletUUID uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[walletUUID]
	if !ok {
		return nil, nil
	}
	return copyWallet(w), nil
}

// GetByUUIDForUpdate runs inside an atomic unit; the transactor already
// holds the store mutex, so it must not be taken again here.
func (r *memoryWalletRepo) GetByUUIDForUpdate(ctx context.Context, tx pgx.Tx, walletUUID uuid.UUID) (*domain.Wallet, error) {
	w, ok := r.store.wallets[walletUUID]
	if !ok {
		return nil, nil
	}
	return copyWallet(w), nil
}

func (r *memoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID int64, balance decimal.Decimal, expectedVersion int64) error {
	w := r.store.walletByID(walletID)
	if w == nil || w.Version != expectedVersion {
		return pgx.ErrNoRows
	}
	w.Balance = balance
	w.Version++
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryWalletRepo) UpdateStatus(ctx context.Context, walletUUID uuid.UUID, status domain.WalletStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[walletUUID]
	if !ok {
		return pgx.ErrNoRows
	}
	w.Status = status
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryWalletRepo) ListByStatus(ctx context.Context, status domain.WalletStatus, page ports.Page) ([]domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	page = page.Normalize()

	var result []domain.Wallet
	for _, w := range r.store.wallets {
		if w.Status == status {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })

	if page.Offset >= len(result) {
		return nil, nil
	}
	end := page.Offset + page.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[page.Offset:end], nil
}

// --- Transaction repository ---

type memoryTransactionRepo struct {
	store *memoryStore
}

func (r *memoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	r.store.nextTxnID++
	txn.ID = r.store.nextTxnID
	txn.CreatedAt = time.Now().UTC()
	cp := *txn
	r.store.txns = append(r.store.txns, &cp)
	return nil
}

func (r *memoryTransactionRepo) ListByWalletID(ctx context.Context, walletID int64, page ports.Page) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	page = page.Normalize()

	var result []domain.Transaction
	for _, t := range r.store.txns {
		if t.WalletID == walletID {
			result = append(result, *t)
		}
	}
	// Newest first, id as tiebreak, matching the SQL adapter's ordering.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if page.Offset >= len(result) {
		return nil, nil
	}
	end := page.Offset + page.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[page.Offset:end], nil
}

func (r *memoryTransactionRepo) GetStatistics(ctx context.Context, walletID int64) (*ports.TransactionStatistics, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stats := &ports.TransactionStatistics{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}
	for _, t := range r.store.txns {
		if t.WalletID != walletID {
			continue
		}
		stats.TransactionCount++
		switch t.OperationType {
		case domain.OperationDeposit:
			stats.TotalDeposits = stats.TotalDeposits.Add(t.Amount)
		case domain.OperationWithdraw:
			stats.TotalWithdrawals = stats.TotalWithdrawals.Add(t.Amount)
		}
	}
	return stats, nil
}

// --- Transactor ---

type memoryTransactor struct {
	store *memoryStore
}

func (t *memoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.store.mu.Lock()
	return &memoryTx{release: &t.store.mu}, nil
}

// memoryTx holds the store mutex for the lifetime of the atomic unit and
// releases it exactly once, whether committed, rolled back, or both (the
// engine rolls back unconditionally via defer).
type memoryTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *memoryTx) done() {
	t.once.Do(t.release.Unlock)
}

func (t *memoryTx) Commit(ctx context.Context) error   { t.done(); return nil }
func (t *memoryTx) Rollback(ctx context.Context) error { t.done(); return nil }

func (t *memoryTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memoryTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memoryTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memoryTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memoryTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memoryTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memoryTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memoryTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *memoryTx) Conn() *pgx.Conn                                               { return nil }
