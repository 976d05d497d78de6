package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// DailySales is the rollup of paid orders inside one local calendar day.
type DailySales struct {
	Date   time.Time
	Orders []*Order
	Total  decimal.Decimal
}

// DebtorOrder is one credit order owed by a customer, with its
// installment history replayed against a recomputed running balance.
type DebtorOrder struct {
	OrderID      uuid.UUID
	Description  string
	Total        decimal.Decimal
	Installments []Installment
	Outstanding  decimal.Decimal
}

// Debtor groups the open credit orders of one customer.
type Debtor struct {
	Customer  string
	TotalOwed decimal.Decimal
	Orders    []DebtorOrder
}
