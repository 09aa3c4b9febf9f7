package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"wallet-ledger-service/config"
	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LedgerServiceImpl implements ports.LedgerService.
//
// The engine holds no cross-call state of its own: serialization of
// concurrent mutations against one wallet is delegated entirely to the
// store's row-level exclusive lock, so any number of engine instances can
// run against the same store.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	refCache   ports.ReferenceCache // optional, best-effort replay of reference ids
	cfg        config.LedgerConfig
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. refCache may be nil, in
// which case reference ids are recorded on transactions but never replayed.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	refCache ports.ReferenceCache,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		refCache:   refCache,
		cfg:        cfg,
		log:        log,
	}
}

// CreateWallet stores a new wallet with version 1 and active status. The
// initial balance is the replay anchor: no ledger entry is emitted for it.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	if !domain.ValidBalance(req.InitialBalance) {
		return nil, apperror.ErrValidation("initial balance must be non-negative with at most 2 decimal places")
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return nil, apperror.ErrValidation(fmt.Sprintf("invalid currency code: %q", currency))
	}

	walletUUID := uuid.New()
	if req.WalletUUID != nil {
		if *req.WalletUUID == uuid.Nil {
			return nil, apperror.ErrValidation("wallet uuid must not be the zero uuid")
		}
		walletUUID = *req.WalletUUID
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		UUID:      walletUUID,
		Balance:   req.InitialBalance,
		Currency:  currency,
		Status:    domain.WalletStatusActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrDuplicateWallet) {
			return nil, apperror.ErrWalletExists(walletUUID)
		}
		return nil, apperror.ErrStore(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_uuid", wallet.UUID.String()).
		Str("initial_balance", wallet.Balance.String()).
		Str("currency", wallet.Currency).
		Msg("wallet created")

	return wallet, nil
}

// GetWallet returns a wallet snapshot by its external identifier.
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, walletUUID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUUID(ctx, walletUUID)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletUUID)
	}
	return wallet, nil
}

// GetBalance returns the latest committed balance. No locking: the read
// needs only the store's own consistency guarantees.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, walletUUID uuid.UUID) (*ports.BalanceSnapshot, error) {
	wallet, err := s.GetWallet(ctx, walletUUID)
	if err != nil {
		return nil, err
	}
	return &ports.BalanceSnapshot{
		WalletUUID:  wallet.UUID,
		Balance:     wallet.Balance,
		Currency:    wallet.Currency,
		Status:      wallet.Status,
		LastUpdated: wallet.UpdatedAt,
	}, nil
}

// PerformOperation applies one deposit or withdrawal atomically.
//
// The wallet row is locked for the duration of the atomic unit, so at most
// one in-flight mutation per wallet can commit; all others block on the lock
// and observe the committed balance when their turn comes. The balance update
// and the ledger append commit together or not at all.
func (s *LedgerServiceImpl) PerformOperation(ctx context.Context, walletUUID uuid.UUID, req ports.OperationRequest) (*ports.OperationResult, error) {
	// Fail fast, before any I/O or lock acquisition.
	if !domain.ValidOperationType(req.OperationType) {
		return nil, apperror.ErrValidation(fmt.Sprintf("invalid operation type: %q", req.OperationType))
	}
	if !domain.ValidAmount(req.Amount) {
		return nil, apperror.ErrValidation("amount must be positive with at most 2 decimal places")
	}

	if cached := s.replayByReference(ctx, walletUUID, req); cached != nil {
		return cached, nil
	}

	// Bound the whole atomic unit, lock wait included.
	opCtx := ctx
	if s.cfg.LockWaitTimeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, s.cfg.LockWaitTimeout)
		defer cancel()
	}

	dbTx, err := s.transactor.Begin(opCtx)
	if err != nil {
		return nil, s.infraError(opCtx, fmt.Errorf("begin atomic unit: %w", err))
	}
	defer dbTx.Rollback(context.WithoutCancel(opCtx)) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUUIDForUpdate(opCtx, dbTx, walletUUID)
	if err != nil {
		return nil, s.infraError(opCtx, fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletUUID)
	}
	if !wallet.IsActive() {
		return nil, apperror.ErrWalletNotActive(walletUUID, string(wallet.Status))
	}

	balanceBefore := wallet.Balance
	var balanceAfter decimal.Decimal
	switch req.OperationType {
	case domain.OperationDeposit:
		balanceAfter = balanceBefore.Add(req.Amount)
	case domain.OperationWithdraw:
		if !wallet.CanWithdraw(req.Amount) {
			return nil, apperror.ErrInsufficientFunds(walletUUID, req.Amount, balanceBefore)
		}
		balanceAfter = balanceBefore.Sub(req.Amount)
	}

	if err := s.walletRepo.UpdateBalance(opCtx, dbTx, wallet.ID, balanceAfter, wallet.Version); err != nil {
		return nil, s.infraError(opCtx, fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.Transaction{
		WalletID:      wallet.ID,
		OperationType: req.OperationType,
		Amount:        req.Amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
	}
	if err := s.txRepo.Create(opCtx, dbTx, txn); err != nil {
		return nil, s.infraError(opCtx, fmt.Errorf("append transaction: %w", err))
	}

	if err := dbTx.Commit(opCtx); err != nil {
		return nil, s.infraError(opCtx, fmt.Errorf("commit atomic unit: %w", err))
	}

	wallet.Balance = balanceAfter
	wallet.Version++
	wallet.UpdatedAt = txn.CreatedAt

	result := &ports.OperationResult{Wallet: *wallet, Transaction: *txn}
	s.cacheByReference(ctx, walletUUID, req.ReferenceID, result)

	s.log.Info().
		Str("wallet_uuid", walletUUID.String()).
		Str("operation_type", string(req.OperationType)).
		Str("amount", req.Amount.String()).
		Str("balance_before", balanceBefore.String()).
		Str("balance_after", balanceAfter.String()).
		Int64("version", wallet.Version).
		Msg("operation committed")

	return result, nil
}

// ListTransactions returns the wallet's ledger entries, newest first.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, walletUUID uuid.UUID, page ports.Page) ([]domain.Transaction, error) {
	wallet, err := s.GetWallet(ctx, walletUUID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txRepo.ListByWalletID(ctx, wallet.ID, page)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// UpdateWalletStatus performs a soft lifecycle transition. Closed wallets
// cannot leave the closed state.
func (s *LedgerServiceImpl) UpdateWalletStatus(ctx context.Context, walletUUID uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error) {
	if !domain.ValidStatus(status) {
		return nil, apperror.ErrValidation(fmt.Sprintf("invalid wallet status: %q", status))
	}

	wallet, err := s.GetWallet(ctx, walletUUID)
	if err != nil {
		return nil, err
	}
	if !wallet.CanTransitionTo(status) {
		return nil, apperror.ErrStatusTransition(walletUUID, string(wallet.Status), string(status))
	}

	if err := s.walletRepo.UpdateStatus(ctx, walletUUID, status); err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("update wallet status: %w", err))
	}

	s.log.Info().
		Str("wallet_uuid", walletUUID.String()).
		Str("from", string(wallet.Status)).
		Str("to", string(status)).
		Msg("wallet status changed")

	wallet.Status = status
	wallet.UpdatedAt = time.Now().UTC()
	return wallet, nil
}

// GetStatistics aggregates the wallet's ledger history.
func (s *LedgerServiceImpl) GetStatistics(ctx context.Context, walletUUID uuid.UUID) (*ports.WalletStatistics, error) {
	wallet, err := s.GetWallet(ctx, walletUUID)
	if err != nil {
		return nil, err
	}

	stats, err := s.txRepo.GetStatistics(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("get statistics: %w", err))
	}

	return &ports.WalletStatistics{
		WalletUUID:       wallet.UUID,
		CurrentBalance:   wallet.Balance,
		TotalDeposits:    stats.TotalDeposits,
		TotalWithdrawals: stats.TotalWithdrawals,
		TransactionCount: stats.TransactionCount,
	}, nil
}

// ListWalletsByStatus returns wallets in the given status, newest first.
func (s *LedgerServiceImpl) ListWalletsByStatus(ctx context.Context, status domain.WalletStatus, page ports.Page) ([]domain.Wallet, error) {
	if !domain.ValidStatus(status) {
		return nil, apperror.ErrValidation(fmt.Sprintf("invalid wallet status: %q", status))
	}

	wallets, err := s.walletRepo.ListByStatus(ctx, status, page)
	if err != nil {
		return nil, apperror.ErrStore(fmt.Errorf("list wallets by status: %w", err))
	}
	return wallets, nil
}

// replayByReference answers a repeated submission from the cache. Strictly
// best-effort: any failure falls through to the real operation. A hit is
// replayed only when the cached operation carries the same type and amount
// as the request; reference ids are not globally unique, so a reused id with
// a different request must execute for real instead of echoing the old
// result.
func (s *LedgerServiceImpl) replayByReference(ctx context.Context, walletUUID uuid.UUID, req ports.OperationRequest) *ports.OperationResult {
	if s.refCache == nil || req.ReferenceID == nil || *req.ReferenceID == "" {
		return nil
	}

	key := referenceKey(walletUUID, *req.ReferenceID)
	cached, err := s.refCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("reference cache lookup failed, continuing")
		return nil
	}
	if cached == nil {
		return nil
	}

	result := &ports.OperationResult{}
	if err := json.Unmarshal(cached, result); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached result")
		return nil
	}

	if result.Transaction.OperationType != req.OperationType || !result.Transaction.Amount.Equal(req.Amount) {
		s.log.Warn().
			Str("wallet_uuid", walletUUID.String()).
			Str("reference_id", *req.ReferenceID).
			Str("cached_operation", string(result.Transaction.OperationType)).
			Str("requested_operation", string(req.OperationType)).
			Msg("cached result does not match request, executing operation")
		return nil
	}

	s.log.Info().
		Str("wallet_uuid", walletUUID.String()).
		Str("reference_id", *req.ReferenceID).
		Msg("operation replayed from reference cache")
	return result
}

func (s *LedgerServiceImpl) cacheByReference(ctx context.Context, walletUUID uuid.UUID, referenceID *string, result *ports.OperationResult) {
	if s.refCache == nil || referenceID == nil || *referenceID == "" {
		return
	}

	key := referenceKey(walletUUID, *referenceID)
	payload, err := json.Marshal(result)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal operation result for cache")
		return
	}
	if err := s.refCache.Set(ctx, key, payload, s.cfg.ReferenceCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache operation result")
	}
}

func referenceKey(walletUUID uuid.UUID, referenceID string) string {
	return walletUUID.String() + ":" + referenceID
}

// infraError classifies a failure inside the atomic unit: a blown deadline is
// a retryable lock-wait timeout, everything else a retryable store error.
// Neither leaves observable state behind; the unit is rolled back.
func (s *LedgerServiceImpl) infraError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperror.ErrLockTimeout(err)
	}
	return apperror.ErrStore(err)
}
