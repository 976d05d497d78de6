package domain_test

import (
	"testing"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_RecomputeTotal(t *testing.T) {
	order := domain.Order{
		Items: []domain.LineItem{
			{ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.MustParse("2.50")},
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.MustParse("10")},
		},
	}

	err := order.RecomputeTotal()
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("27.50"), order.Total)

	order.Items = nil
	err = order.RecomputeTotal()
	assert.NoError(t, err)
	assert.Equal(t, decimal.Zero, order.Total)
}

func TestOrder_MergeItem(t *testing.T) {
	stock := 5
	cola := &domain.Product{
		ID:       uuid.New(),
		Name:     "Cola",
		Category: domain.CategoryBeverage,
		Price:    decimal.MustParse("1.50"),
		Stock:    &stock,
	}

	order := domain.Order{}
	order.MergeItem(cola, 2)
	order.MergeItem(cola, 2)

	assert.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].Quantity)
	assert.Equal(t, cola.Price, order.Items[0].UnitPrice)
	assert.Equal(t, "Cola", order.Items[0].Name)
}

func TestOrder_OutstandingBalance(t *testing.T) {
	order := domain.Order{Total: decimal.MustParse("100")}

	balance, err := order.OutstandingBalance()
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("100"), balance)

	order.Installments = append(order.Installments, domain.Installment{Amount: decimal.MustParse("40")})
	balance, err = order.OutstandingBalance()
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("60"), balance)

	// Overpayment clamps at zero instead of going negative.
	order.Installments = append(order.Installments, domain.Installment{Amount: decimal.MustParse("70")})
	balance, err = order.OutstandingBalance()
	assert.NoError(t, err)
	assert.Equal(t, decimal.Zero, balance)
}

func TestOrder_OutstandingBalanceIgnoresStoredSnapshots(t *testing.T) {
	order := domain.Order{
		Total: decimal.MustParse("100"),
		Installments: []domain.Installment{
			// Corrupted snapshot: stored balance disagrees with the
			// amounts. Recomputation must not read it.
			{Amount: decimal.MustParse("30"), BalanceAfter: decimal.MustParse("99")},
			{Amount: decimal.MustParse("20"), BalanceAfter: decimal.MustParse("1")},
		},
	}

	balance, err := order.OutstandingBalance()
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("50"), balance)
}

func TestValidOverrideStatus(t *testing.T) {
	assert.True(t, domain.ValidOverrideStatus(domain.OrderStatusPending))
	assert.True(t, domain.ValidOverrideStatus(domain.OrderStatusPaid))
	assert.True(t, domain.ValidOverrideStatus(domain.OrderStatusCredit))
	assert.False(t, domain.ValidOverrideStatus(domain.OrderStatusCancelled))
	assert.False(t, domain.ValidOverrideStatus(domain.OrderStatus("Fiado")))
}

func TestProduct_StockTracked(t *testing.T) {
	stock := 3
	assert.True(t, (&domain.Product{Category: domain.CategoryBeverage, Stock: &stock}).StockTracked())
	assert.False(t, (&domain.Product{Category: domain.CategoryBeverage}).StockTracked())
	assert.False(t, (&domain.Product{Category: "comida", Stock: &stock}).StockTracked())
}
