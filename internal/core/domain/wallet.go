package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatus represents the lifecycle state of a wallet.
// Wallets are never physically deleted; they move through soft status
// transitions instead.
type WalletStatus string

const (
	WalletStatusActive WalletStatus = "active"
	WalletStatusFrozen WalletStatus = "frozen"
	WalletStatusClosed WalletStatus = "closed"
)

// ValidStatus reports whether s is a known wallet status.
func ValidStatus(s WalletStatus) bool {
	switch s {
	case WalletStatusActive, WalletStatusFrozen, WalletStatusClosed:
		return true
	}
	return false
}

// Wallet is a monetary account. The balance is an exact decimal with two
// fractional digits and is only ever mutated through the ledger engine's
// operation protocol, never by direct assignment.
type Wallet struct {
	ID        int64           `json:"-"` // internal row key, never exposed
	UUID      uuid.UUID       `json:"uuid"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    WalletStatus    `json:"status"`
	Version   int64           `json:"version"` // +1 per committed mutation, audit trail
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsActive reports whether the wallet accepts balance mutations.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// CanWithdraw reports whether the wallet holds at least amount.
func (w *Wallet) CanWithdraw(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// CanTransitionTo reports whether the status transition is allowed.
// Closed is terminal.
func (w *Wallet) CanTransitionTo(next WalletStatus) bool {
	if w.Status == WalletStatusClosed {
		return false
	}
	return ValidStatus(next) && next != w.Status
}

// MoneyScale is the fixed number of fractional digits for all monetary values.
const MoneyScale = 2

// ValidAmount reports whether d is a well-formed monetary amount: positive
// and with at most MoneyScale fractional digits. Amounts are validated before
// any I/O so malformed requests fail fast.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && -d.Exponent() <= MoneyScale
}

// ValidBalance is ValidAmount relaxed to allow zero (initial balances).
func ValidBalance(d decimal.Decimal) bool {
	return !d.IsNegative() && -d.Exponent() <= MoneyScale
}
