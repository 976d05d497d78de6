package service_test

import (
	"context"
	"testing"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestService_PayCash(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusPending,
		Total:  decimal.MustParse("12.50"),
	}

	s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderStub(order))
	})

	result, err := s.PayCash(context.Background(), order.ID, decimal.MustParse("20"))
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
	assert.Equal(t, domain.PaymentCash, result.PaymentMethod)
	assert.Equal(t, decimal.MustParse("20"), result.AmountTendered)
	assert.NotNil(t, result.PaidAt)
	assert.Len(t, result.Payments, 1)
	assert.Equal(t, domain.PaymentCash, result.Payments[0].Method)
	assert.Equal(t, decimal.MustParse("20"), result.Payments[0].AmountTendered)
}

func TestService_PayOther(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusPending,
		Total:  decimal.MustParse("12.50"),
	}

	s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderStub(order))
	})

	result, err := s.PayOther(context.Background(), order.ID, domain.PaymentTransfer)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
	assert.Equal(t, domain.PaymentTransfer, result.PaymentMethod)
	assert.NotNil(t, result.PaidAt)
	assert.Len(t, result.Payments, 1)
}

// Settling an order of 100 with a 40 installment and then a 60 one
// walks Pending -> Credit(60 outstanding) -> Paid(0 outstanding).
func TestService_CreditSettlement(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusPending,
		Total:  decimal.MustParse("100.00"),
	}

	s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderStub(order)).Times(2)
	})

	result, err := s.PayCredit(context.Background(), order.ID, decimal.MustParse("40.00"))
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCredit, result.Status)
	assert.Nil(t, result.PaidAt)
	assert.Len(t, result.Installments, 1)
	assert.Equal(t, decimal.MustParse("60.00"), result.Installments[0].BalanceAfter)

	balance, err := result.OutstandingBalance()
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("60.00"), balance)

	result, err = s.AddInstallment(context.Background(), order.ID, decimal.MustParse("60.00"))
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
	assert.NotNil(t, result.PaidAt)
	assert.Len(t, result.Installments, 2)
	assert.Equal(t, decimal.MustParse("0.00"), result.Installments[1].BalanceAfter)

	balance, err = result.OutstandingBalance()
	assert.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestService_AddInstallmentValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "zero amount", amount: decimal.Zero},
		{name: "negative amount", amount: decimal.MustParse("-5")},
		{name: "amount over outstanding balance", amount: decimal.MustParse("100.01")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{
				ID:     uuid.New(),
				Status: domain.OrderStatusCredit,
				Total:  decimal.MustParse("100.00"),
			}

			s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
				m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
					DoAndReturn(updateOrderStub(order))
			})

			result, err := s.AddInstallment(context.Background(), order.ID, test.amount)
			assert.ErrorIs(t, err, domain.ErrInvalidInstallment)
			assert.Nil(t, result)
			assert.Empty(t, order.Installments)
		})
	}
}

// PayCredit is the register's lenient path: a zero amount (the default
// for malformed input) is recorded instead of rejected.
func TestService_PayCreditLenient(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusPending,
		Total:  decimal.MustParse("100.00"),
	}

	s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
		m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(updateOrderStub(order))
	})

	result, err := s.PayCredit(context.Background(), order.ID, decimal.Zero)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCredit, result.Status)
	assert.Len(t, result.Installments, 1)
	assert.Equal(t, decimal.MustParse("100.00"), result.Installments[0].BalanceAfter)
}

func TestService_ListDebtors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	juanA := &domain.Order{
		ID:       uuid.New(),
		Customer: "Juan",
		Total:    decimal.MustParse("100.00"),
		Status:   domain.OrderStatusCredit,
		Installments: []domain.Installment{
			// Stored snapshot is wrong on purpose; the report must
			// recompute it.
			{Amount: decimal.MustParse("40.00"), BalanceAfter: decimal.MustParse("99.00")},
		},
	}
	juanB := &domain.Order{
		ID:       uuid.New(),
		Customer: "Juan",
		Total:    decimal.MustParse("50.00"),
		Status:   domain.OrderStatusCredit,
	}
	// Stale status: fully paid but still marked Credit.
	rosa := &domain.Order{
		ID:       uuid.New(),
		Customer: "Rosa",
		Total:    decimal.MustParse("30.00"),
		Status:   domain.OrderStatusCredit,
		Installments: []domain.Installment{
			{Amount: decimal.MustParse("30.00")},
		},
	}

	s, _ := newTestService(t, mockCtrl, false, func(m serviceMocks) {
		m.repo.EXPECT().ListOrdersByStatus(gomock.Any(), domain.OrderStatusCredit).
			Return([]*domain.Order{juanA, juanB, rosa}, nil)
	})

	debtors, err := s.ListDebtors(context.Background())
	assert.NoError(t, err)
	assert.Len(t, debtors, 1)
	assert.Equal(t, "Juan", debtors[0].Customer)
	assert.Equal(t, decimal.MustParse("110.00"), debtors[0].TotalOwed)
	assert.Len(t, debtors[0].Orders, 2)
	assert.Equal(t, decimal.MustParse("60.00"), debtors[0].Orders[0].Outstanding)
	assert.Equal(t, decimal.MustParse("60.00"), debtors[0].Orders[0].Installments[0].BalanceAfter)
	assert.Equal(t, decimal.MustParse("50.00"), debtors[0].Orders[1].Outstanding)
}
