package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType represents the kind of balance mutation.
type OperationType string

const (
	OperationDeposit  OperationType = "DEPOSIT"
	OperationWithdraw OperationType = "WITHDRAW"
)

// ValidOperationType reports whether t is a known operation type.
func ValidOperationType(t OperationType) bool {
	return t == OperationDeposit || t == OperationWithdraw
}

// Transaction is an immutable ledger entry recording one committed balance
// mutation. It is inserted in the same atomic unit as the wallet update and
// never modified afterwards.
type Transaction struct {
	ID            int64           `json:"id"`
	WalletID      int64           `json:"-"` // internal FK
	OperationType OperationType   `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Description   *string         `json:"description,omitempty"`
	ReferenceID   *string         `json:"reference_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Consistent verifies balance_after = balance_before ± amount for the entry's
// operation type.
func (t *Transaction) Consistent() bool {
	switch t.OperationType {
	case OperationDeposit:
		return t.BalanceAfter.Equal(t.BalanceBefore.Add(t.Amount))
	case OperationWithdraw:
		return t.BalanceAfter.Equal(t.BalanceBefore.Sub(t.Amount))
	}
	return false
}

// Replay folds transactions in commit order starting from initial and returns
// the resulting balance. For a consistent ledger the result equals the
// wallet's current balance exactly — the auditability guarantee.
func Replay(initial decimal.Decimal, txs []Transaction) decimal.Decimal {
	balance := initial
	for i := range txs {
		switch txs[i].OperationType {
		case OperationDeposit:
			balance = balance.Add(txs[i].Amount)
		case OperationWithdraw:
			balance = balance.Sub(txs[i].Amount)
		}
	}
	return balance
}
