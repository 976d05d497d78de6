package service

import (
	"context"
	"fmt"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"go.uber.org/zap"
)

// InventoryLedger mutates product stock counters through the catalog
// collaborator. It carries the two stock policies of the order flow:
// the lenient clamp used on creation and the live add-item screen, and
// the strict availability check used on edits.
type InventoryLedger struct {
	catalog port.Catalog
	logger  *zap.Logger
}

func NewInventoryLedger(catalog port.Catalog, logger *zap.Logger) (*InventoryLedger, error) {
	return &InventoryLedger{catalog: catalog, logger: logger}, nil
}

func (l *InventoryLedger) Debit(ctx context.Context, product *domain.Product, quantity int) error {
	if !product.StockTracked() {
		return nil
	}

	// Clamped at zero on purpose: selling past the counter is allowed
	// here, the counter just bottoms out.
	stock := *product.Stock - quantity
	if stock < 0 {
		l.logger.Warn("stock clamped to zero",
			zap.String("product", product.Name),
			zap.Int("stock", *product.Stock),
			zap.Int("quantity", quantity))
		stock = 0
	}

	if err := l.catalog.UpdateStock(ctx, product.ID, stock); err != nil {
		return fmt.Errorf("debit stock: %w", err)
	}
	*product.Stock = stock
	return nil
}

func (l *InventoryLedger) Credit(ctx context.Context, product *domain.Product, quantity int) error {
	if !product.StockTracked() {
		return nil
	}

	stock := *product.Stock + quantity
	if err := l.catalog.UpdateStock(ctx, product.ID, stock); err != nil {
		return fmt.Errorf("credit stock: %w", err)
	}
	*product.Stock = stock
	return nil
}

func (l *InventoryLedger) DebitChecked(ctx context.Context, product *domain.Product, quantity int) error {
	if !product.StockTracked() {
		return nil
	}

	if quantity > *product.Stock {
		l.logger.Warn("insufficient stock",
			zap.String("product", product.Name),
			zap.Int("stock", *product.Stock),
			zap.Int("quantity", quantity))
		return fmt.Errorf("%w: %s (stock actual: %d)",
			domain.ErrInsufficientStock, product.Name, *product.Stock)
	}

	stock := *product.Stock - quantity
	if err := l.catalog.UpdateStock(ctx, product.ID, stock); err != nil {
		return fmt.Errorf("debit stock: %w", err)
	}
	*product.Stock = stock
	return nil
}
