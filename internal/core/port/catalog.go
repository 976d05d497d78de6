package port

import (
	"context"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/google/uuid"
)

// Catalog is the product collaborator consumed by the order core. The
// catalog owns products; the core only reads them and writes stock
// counters as a side effect of line-item changes.
//
//go:generate mockgen -source=catalog.go -destination=mock/catalog.go -package=mock
type Catalog interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
