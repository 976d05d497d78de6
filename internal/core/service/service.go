package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo            port.Repository
	catalog         port.Catalog
	inventory       port.Inventory
	location        *time.Location
	restockOnDelete bool
	logger          *zap.Logger
}

func NewService(repo port.Repository, catalog port.Catalog, inventory port.Inventory,
	location *time.Location, restockOnDelete bool, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:            repo,
		catalog:         catalog,
		inventory:       inventory,
		location:        location,
		restockOnDelete: restockOnDelete,
		logger:          logger,
	}, nil
}

func normalizeCustomer(customer string) string {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return domain.DefaultCustomer
	}
	return customer
}

func (s *Service) CreateOrder(ctx context.Context, customer, description string,
	items []port.ItemRequest) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrderItems
	}

	order := &domain.Order{
		ID:          uuid.New(),
		Customer:    normalizeCustomer(customer),
		Description: strings.TrimSpace(description),
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	for _, item := range items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			// Unknown ids inside a batch are skipped, not surfaced.
			if errors.Is(err, domain.ErrDataNotFound) {
				continue
			}
			s.logger.Error("resolve product", zap.Error(err))
			return nil, err
		}

		order.MergeItem(product, item.Quantity)

		if err := s.inventory.Debit(ctx, product, item.Quantity); err != nil {
			s.logger.Error("debit stock", zap.Error(err))
			return nil, err
		}
	}

	if err := order.RecomputeTotal(); err != nil {
		return nil, err
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

// EditOrder replaces the order's line items. Previous stock debits are
// reverted before the new quantities are applied with the strict
// availability check, and nothing is written until every new item has
// passed, so a failed edit leaves stock exactly as it was.
func (s *Service) EditOrder(ctx context.Context, orderID uuid.UUID, customer, description string,
	items []port.ItemRequest) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrderItems
	}

	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	products := make(map[uuid.UUID]*domain.Product)
	// Simulated stock per tracked product, starting from the counter
	// with the old quantities credited back. No write happens until
	// every new item has passed against this simulation.
	simulated := make(map[uuid.UUID]int)

	for _, item := range order.Items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				continue
			}
			return nil, err
		}
		products[product.ID] = product
		if product.StockTracked() {
			simulated[product.ID] = *product.Stock + item.Quantity
		}
	}

	replacement := &domain.Order{}
	newItems := make([]port.ItemRequest, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			product, err = s.catalog.GetProduct(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					continue
				}
				return nil, err
			}
			products[product.ID] = product
		}

		if product.StockTracked() {
			available, ok := simulated[product.ID]
			if !ok {
				available = *product.Stock
			}
			if item.Quantity > available {
				return nil, fmt.Errorf("%w: %s (stock actual: %d)",
					domain.ErrInsufficientStock, product.Name, available)
			}
			simulated[product.ID] = available - item.Quantity
		}

		replacement.MergeItem(product, item.Quantity)
		newItems = append(newItems, item)
	}

	if err := replacement.RecomputeTotal(); err != nil {
		return nil, err
	}

	// Revert then reapply. The simulation above guarantees no
	// DebitChecked call below can fail on availability.
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		if err := s.inventory.Credit(ctx, product, item.Quantity); err != nil {
			s.logger.Error("revert stock", zap.Error(err))
			return nil, err
		}
	}
	for _, item := range newItems {
		if err := s.inventory.DebitChecked(ctx, products[item.ProductID], item.Quantity); err != nil {
			s.logger.Error("apply stock", zap.Error(err))
			return nil, err
		}
	}

	now := time.Now().UTC()
	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Customer = normalizeCustomer(customer)
		o.Description = strings.TrimSpace(description)
		o.Items = replacement.Items
		o.Total = replacement.Total
		o.UpdatedAt = &now
		return nil
	})
}

func (s *Service) AddLineItem(ctx context.Context, orderID, productID uuid.UUID,
	quantity int) (*domain.Order, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.MergeItem(product, quantity)
		return o.RecomputeTotal()
	})
	if err != nil {
		return nil, err
	}

	// Lenient debit, same policy as creation.
	if err := s.inventory.Debit(ctx, product, quantity); err != nil {
		s.logger.Error("debit stock", zap.Error(err))
		return nil, err
	}

	return order, nil
}

// DeleteOrder removes the order permanently. Stock stays debited unless
// restock-on-delete is configured; the original system never restocked
// on deletion.
func (s *Service) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if s.restockOnDelete {
		order, err := s.repo.ReadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		for _, item := range order.Items {
			product, err := s.catalog.GetProduct(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrDataNotFound) {
					continue
				}
				return err
			}
			if err := s.inventory.Credit(ctx, product, item.Quantity); err != nil {
				return err
			}
		}
	}

	return s.repo.DeleteOrder(ctx, orderID)
}

func (s *Service) SetCustomer(ctx context.Context, orderID uuid.UUID, customer string) (*domain.Order, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, domain.ErrEmptyCustomerName
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Customer = customer
		return nil
	})
}

// SetStatus is a raw administrative override. It validates the value
// but runs none of the payment side effects.
func (s *Service) SetStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOverrideStatus(status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Status = status
		return nil
	})
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

func (s *Service) ListActiveOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListOrdersByStatus(ctx, domain.OrderStatusPending)
}

func (s *Service) ListPaidOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListOrdersByStatus(ctx, domain.OrderStatusPaid)
}
