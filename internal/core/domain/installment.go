package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

// Installment is one partial payment (abono) applied against a credit
// order. BalanceAfter is the balance recorded at write time; it is kept
// for display only and is never read back by balance logic.
type Installment struct {
	At           time.Time
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// OutstandingBalance recomputes what is still owed on the order from
// the full installment history: max(total − Σ amounts, 0). Stored
// BalanceAfter snapshots are ignored so a stale row cannot compound.
func (o *Order) OutstandingBalance() (decimal.Decimal, error) {
	balance := o.Total
	for _, ins := range o.Installments {
		var err error
		balance, err = balance.Sub(ins.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("outstanding balance: %w", err)
		}
	}
	if balance.Cmp(decimal.Zero) < 0 {
		return decimal.Zero, nil
	}
	return balance, nil
}
