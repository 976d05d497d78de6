package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pendiente"
	OrderStatusPaid      OrderStatus = "Pagado"
	OrderStatusCredit    OrderStatus = "Crédito"
	OrderStatusCancelled OrderStatus = "Cancelado"
)

// ValidOverrideStatus reports whether s may be written through the raw
// status override. Cancellation is modeled as deletion, so it is not an
// assignable status.
func ValidOverrideStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCredit:
		return true
	}
	return false
}

// DefaultCustomer is stored when an order is created or edited with a
// blank customer name.
const DefaultCustomer = "Cliente sin nombre"

// LineItem is one product row inside an order. Name and UnitPrice are
// snapshots taken when the row was added; later catalog edits do not
// change them.
type LineItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCredit   PaymentMethod = "Credito"
	PaymentTransfer PaymentMethod = "Transferencia"
)

// PaymentRecord is one row of the non-credit payment history.
type PaymentRecord struct {
	At             time.Time
	Method         PaymentMethod
	AmountTendered decimal.Decimal
}

type Order struct {
	ID             uuid.UUID
	Customer       string
	Description    string
	Items          []LineItem
	Total          decimal.Decimal
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	PaymentMethod  PaymentMethod
	PaidAt         *time.Time
	AmountTendered decimal.Decimal
	Payments       []PaymentRecord
	Installments   []Installment
}

// RecomputeTotal derives Total from the line items. Every mutation that
// touches Items must call it; the stored total is never trusted.
func (o *Order) RecomputeTotal() error {
	total := decimal.Zero
	for _, it := range o.Items {
		qty, err := decimal.New(int64(it.Quantity), 0)
		if err != nil {
			return fmt.Errorf("quantity to decimal: %w", err)
		}
		line, err := it.UnitPrice.Mul(qty)
		if err != nil {
			return fmt.Errorf("line total: %w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return fmt.Errorf("order total: %w", err)
		}
	}
	o.Total = total
	return nil
}

// MergeItem increments the quantity of an existing row for the product,
// or appends a new row. One row per product id is an order invariant.
func (o *Order) MergeItem(product *Product, quantity int) {
	for i := range o.Items {
		if o.Items[i].ProductID == product.ID {
			o.Items[i].Quantity += quantity
			return
		}
	}
	o.Items = append(o.Items, LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
}
