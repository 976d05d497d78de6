package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// CategoryBeverage is the only category whose stock is tracked by the
// inventory ledger. Products in other categories carry a nil Stock.
const CategoryBeverage = "bebida"

type Product struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    *int
}

// StockTracked reports whether order activity debits and credits this
// product's stock counter.
func (p *Product) StockTracked() bool {
	return p.Category == CategoryBeverage && p.Stock != nil
}
