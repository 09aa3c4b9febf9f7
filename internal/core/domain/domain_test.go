package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWallet_IsActive(t *testing.T) {
	w := &Wallet{Status: WalletStatusActive}
	assert.True(t, w.IsActive())

	w.Status = WalletStatusFrozen
	assert.False(t, w.IsActive())

	w.Status = WalletStatusClosed
	assert.False(t, w.IsActive())
}

func TestWallet_CanWithdraw(t *testing.T) {
	w := &Wallet{Balance: dec("100.00")}

	assert.True(t, w.CanWithdraw(dec("50.00")))
	assert.True(t, w.CanWithdraw(dec("100.00")), "withdrawing the exact balance is allowed")
	assert.False(t, w.CanWithdraw(dec("100.01")))
}

func TestWallet_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from WalletStatus
		to   WalletStatus
		want bool
	}{
		{"active to frozen", WalletStatusActive, WalletStatusFrozen, true},
		{"active to closed", WalletStatusActive, WalletStatusClosed, true},
		{"frozen to active", WalletStatusFrozen, WalletStatusActive, true},
		{"frozen to closed", WalletStatusFrozen, WalletStatusClosed, true},
		{"closed is terminal", WalletStatusClosed, WalletStatusActive, false},
		{"no self transition", WalletStatusActive, WalletStatusActive, false},
		{"unknown target", WalletStatusActive, WalletStatus("deleted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wallet{Status: tt.from}
			assert.Equal(t, tt.want, w.CanTransitionTo(tt.to))
		})
	}
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{"positive with two decimals", "10.50", true},
		{"positive integer", "10", true},
		{"smallest unit", "0.01", true},
		{"zero", "0", false},
		{"negative", "-1.00", false},
		{"three decimal places", "0.001", false},
		{"sub-cent precision", "10.505", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(dec(tt.amount)))
		})
	}
}

func TestValidBalance_AllowsZero(t *testing.T) {
	assert.True(t, ValidBalance(dec("0")))
	assert.True(t, ValidBalance(dec("0.00")))
	assert.False(t, ValidBalance(dec("-0.01")))
	assert.False(t, ValidBalance(dec("1.001")))
}

func TestTransaction_Consistent(t *testing.T) {
	deposit := Transaction{
		OperationType: OperationDeposit,
		Amount:        dec("25.00"),
		BalanceBefore: dec("100.00"),
		BalanceAfter:  dec("125.00"),
	}
	assert.True(t, deposit.Consistent())

	withdraw := Transaction{
		OperationType: OperationWithdraw,
		Amount:        dec("25.00"),
		BalanceBefore: dec("100.00"),
		BalanceAfter:  dec("75.00"),
	}
	assert.True(t, withdraw.Consistent())

	broken := Transaction{
		OperationType: OperationDeposit,
		Amount:        dec("25.00"),
		BalanceBefore: dec("100.00"),
		BalanceAfter:  dec("124.99"),
	}
	assert.False(t, broken.Consistent())

	unknown := Transaction{OperationType: OperationType("TRANSFER")}
	assert.False(t, unknown.Consistent())
}

func TestReplay_ReproducesBalance(t *testing.T) {
	txs := []Transaction{
		{OperationType: OperationDeposit, Amount: dec("100.00")},
		{OperationType: OperationWithdraw, Amount: dec("30.50")},
		{OperationType: OperationDeposit, Amount: dec("0.01")},
		{OperationType: OperationWithdraw, Amount: dec("69.51")},
	}

	final := Replay(dec("1000.00"), txs)
	assert.True(t, final.Equal(dec("1000.00")), "got %s", final)
}

func TestReplay_NoDriftOverLongChains(t *testing.T) {
	// 10000 alternating 0.01 deposits and withdrawals must cancel exactly.
	txs := make([]Transaction, 0, 10000)
	for i := 0; i < 5000; i++ {
		txs = append(txs,
			Transaction{OperationType: OperationDeposit, Amount: dec("0.01")},
			Transaction{OperationType: OperationWithdraw, Amount: dec("0.01")},
		)
	}

	final := Replay(dec("1.00"), txs)
	assert.True(t, final.Equal(dec("1.00")), "got %s", final)
}

func TestValidOperationType(t *testing.T) {
	assert.True(t, ValidOperationType(OperationDeposit))
	assert.True(t, ValidOperationType(OperationWithdraw))
	assert.False(t, ValidOperationType(OperationType("TRANSFER")))
	assert.False(t, ValidOperationType(OperationType("")))
}
