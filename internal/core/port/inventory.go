package port

import (
	"context"

	"github.com/dquintana/fondapos/internal/core/domain"
)

// Inventory applies stock deltas caused by order mutations. Debit and
// DebitChecked are two distinct policies on purpose: order creation and
// the live add-item endpoint clamp silently, order edits reject when
// the requested quantity exceeds stock. Do not unify them.
//
//go:generate mockgen -source=inventory.go -destination=mock/inventory.go -package=mock
type Inventory interface {
	// Debit lowers stock by quantity, clamped at zero. Never fails
	// for lack of stock. No-op for untracked products.
	Debit(ctx context.Context, product *domain.Product, quantity int) error
	// Credit raises stock by quantity, used to revert line items
	// before an edit reapplies new quantities.
	Credit(ctx context.Context, product *domain.Product, quantity int) error
	// DebitChecked rejects with ErrInsufficientStock when quantity
	// exceeds the current counter.
	DebitChecked(ctx context.Context, product *domain.Product, quantity int) error
}
