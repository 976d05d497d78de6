package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (s *Service) PayCash(ctx context.Context, orderID uuid.UUID,
	tendered decimal.Decimal) (*domain.Order, error) {
	now := time.Now().UTC()

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Status = domain.OrderStatusPaid
		o.PaymentMethod = domain.PaymentCash
		o.PaidAt = &now
		o.AmountTendered = tendered
		o.Payments = append(o.Payments, domain.PaymentRecord{
			At:             now,
			Method:         domain.PaymentCash,
			AmountTendered: tendered,
		})
		return nil
	})
}

func (s *Service) PayOther(ctx context.Context, orderID uuid.UUID,
	method domain.PaymentMethod) (*domain.Order, error) {
	now := time.Now().UTC()

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Status = domain.OrderStatusPaid
		o.PaymentMethod = method
		o.PaidAt = &now
		o.Payments = append(o.Payments, domain.PaymentRecord{
			At:     now,
			Method: method,
		})
		return nil
	})
}

// PayCredit records the first installment of a credit sale. Unlike
// AddInstallment it accepts any amount: the register screen defaults a
// malformed amount to zero and the balance is clamped, matching the
// original register behavior.
func (s *Service) PayCredit(ctx context.Context, orderID uuid.UUID,
	amount decimal.Decimal) (*domain.Order, error) {
	return s.appendInstallment(ctx, orderID, amount, false)
}

// AddInstallment applies one abono against an open credit order. The
// amount must be positive and must not exceed the outstanding balance.
func (s *Service) AddInstallment(ctx context.Context, orderID uuid.UUID,
	amount decimal.Decimal) (*domain.Order, error) {
	return s.appendInstallment(ctx, orderID, amount, true)
}

func (s *Service) appendInstallment(ctx context.Context, orderID uuid.UUID,
	amount decimal.Decimal, strict bool) (*domain.Order, error) {
	now := time.Now().UTC()

	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		// Always recomputed from the full history; BalanceAfter
		// snapshots on stored rows are display-only.
		balance, err := o.OutstandingBalance()
		if err != nil {
			return err
		}

		if strict {
			if amount.Cmp(decimal.Zero) <= 0 || amount.Cmp(balance) > 0 {
				return fmt.Errorf("%w: saldo restante %s", domain.ErrInvalidInstallment, balance)
			}
		}

		outstanding, err := balance.Sub(amount)
		if err != nil {
			return fmt.Errorf("installment balance: %w", err)
		}
		if outstanding.Cmp(decimal.Zero) < 0 {
			outstanding = decimal.Zero
		}

		o.Installments = append(o.Installments, domain.Installment{
			At:           now,
			Amount:       amount,
			BalanceAfter: outstanding,
		})

		if outstanding.Cmp(decimal.Zero) == 0 {
			o.Status = domain.OrderStatusPaid
			o.PaidAt = &now
		} else {
			o.Status = domain.OrderStatusCredit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("installment recorded",
		zap.String("order", orderID.String()),
		zap.String("status", string(order.Status)))
	return order, nil
}

// ListDebtors scans open credit orders, replays each installment
// history against a running balance, and groups what is still owed by
// customer. Orders whose recomputed balance is zero or below are
// dropped even if their stored status says Credit.
func (s *Service) ListDebtors(ctx context.Context) ([]*domain.Debtor, error) {
	orders, err := s.repo.ListOrdersByStatus(ctx, domain.OrderStatusCredit)
	if err != nil {
		s.logger.Error("list credit orders", zap.Error(err))
		return nil, err
	}

	byCustomer := make(map[string]*domain.Debtor)
	result := make([]*domain.Debtor, 0)

	for _, order := range orders {
		balance := order.Total
		replayed := make([]domain.Installment, 0, len(order.Installments))
		for _, ins := range order.Installments {
			balance, err = balance.Sub(ins.Amount)
			if err != nil {
				return nil, fmt.Errorf("replay installments: %w", err)
			}
			after := balance
			if after.Cmp(decimal.Zero) < 0 {
				after = decimal.Zero
			}
			replayed = append(replayed, domain.Installment{
				At:           ins.At,
				Amount:       ins.Amount,
				BalanceAfter: after,
			})
		}

		if balance.Cmp(decimal.Zero) <= 0 {
			continue
		}

		debtor, ok := byCustomer[order.Customer]
		if !ok {
			debtor = &domain.Debtor{Customer: order.Customer, TotalOwed: decimal.Zero}
			byCustomer[order.Customer] = debtor
			result = append(result, debtor)
		}

		owed, err := debtor.TotalOwed.Add(balance)
		if err != nil {
			return nil, fmt.Errorf("sum owed: %w", err)
		}
		debtor.TotalOwed = owed
		debtor.Orders = append(debtor.Orders, domain.DebtorOrder{
			OrderID:      order.ID,
			Description:  order.Description,
			Total:        order.Total,
			Installments: replayed,
			Outstanding:  balance,
		})
	}

	return result, nil
}
