package port

import (
	"context"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/google/uuid"
)

// UpdateOrderFn mutates an order inside the repository's transactional
// scope. Returning an error rolls the whole update back.
type UpdateOrderFn func(*domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn UpdateOrderFn) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	ListPaidOrdersBetween(ctx context.Context, from, to time.Time) ([]*domain.Order, error)
}
