package port

import (
	"context"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// ItemRequest is one (product, quantity) pair of a create or edit call.
type ItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

type Service interface {
	CreateOrder(ctx context.Context, customer, description string, items []ItemRequest) (*domain.Order, error)
	EditOrder(ctx context.Context, orderID uuid.UUID, customer, description string, items []ItemRequest) (*domain.Order, error)
	AddLineItem(ctx context.Context, orderID, productID uuid.UUID, quantity int) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	SetCustomer(ctx context.Context, orderID uuid.UUID, customer string) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)

	PayCash(ctx context.Context, orderID uuid.UUID, tendered decimal.Decimal) (*domain.Order, error)
	PayOther(ctx context.Context, orderID uuid.UUID, method domain.PaymentMethod) (*domain.Order, error)
	PayCredit(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Order, error)
	AddInstallment(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Order, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListActiveOrders(ctx context.Context) ([]*domain.Order, error)
	ListPaidOrders(ctx context.Context) ([]*domain.Order, error)
	ListDebtors(ctx context.Context) ([]*domain.Debtor, error)
	DailySales(ctx context.Context, date time.Time) (*domain.DailySales, error)
}
