package apperror

import (
	"errors"
	"fmt"

	"wallet-ledger-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies an error independently of any transport. Callers decide how
// to surface each kind; only KindTimeout and KindStore are safe to retry.
type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindInvalidState      Kind = "INVALID_STATE"
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	KindTimeout           Kind = "TIMEOUT"
	KindStore             Kind = "STORE"
)

// AppError is a structured error carrying a stable code and a kind.
type AppError struct {
	Code    string         `json:"error_code"`
	Kind    Kind           `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the Kind from any error in the chain.
// Unclassified errors report KindStore.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Retryable reports whether the caller may safely retry the whole operation.
// Only infrastructure failures qualify: nothing was committed on those paths.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindTimeout, KindStore:
		return true
	}
	return false
}

// ---- Ledger Business Logic (WLT) ----

func ErrValidation(message string) *AppError {
	return New("WLT_001", KindValidation, message)
}

func ErrWalletNotFound(walletUUID uuid.UUID) *AppError {
	e := New("WLT_002", KindNotFound, "Wallet not found")
	e.Details = map[string]any{"wallet_uuid": walletUUID.String()}
	return e
}

func ErrWalletExists(walletUUID uuid.UUID) *AppError {
	e := New("WLT_003", KindConflict, "Wallet with this identifier already exists")
	e.Details = map[string]any{"wallet_uuid": walletUUID.String()}
	return e
}

func ErrWalletNotActive(walletUUID uuid.UUID, status string) *AppError {
	e := New("WLT_004", KindInvalidState, fmt.Sprintf("Wallet is not active (status: %s)", status))
	e.Details = map[string]any{"wallet_uuid": walletUUID.String(), "status": status}
	return e
}

func ErrInsufficientFunds(walletUUID uuid.UUID, requested, available decimal.Decimal) *AppError {
	e := New("WLT_005", KindInsufficientFunds, "Insufficient funds in wallet")
	e.Details = map[string]any{
		"wallet_uuid":      walletUUID.String(),
		"requested_amount": requested.StringFixed(domain.MoneyScale),
		"current_balance":  available.StringFixed(domain.MoneyScale),
	}
	return e
}

func ErrStatusTransition(walletUUID uuid.UUID, from, to string) *AppError {
	e := New("WLT_006", KindInvalidState, fmt.Sprintf("Wallet cannot transition from %s to %s", from, to))
	e.Details = map[string]any{"wallet_uuid": walletUUID.String(), "from": from, "to": to}
	return e
}

// ---- System & Infrastructure (SYS) ----

func ErrStore(err error) *AppError {
	return Wrap("SYS_001", KindStore, "Internal storage error", err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", KindTimeout, "Lock acquisition timeout", err)
}
