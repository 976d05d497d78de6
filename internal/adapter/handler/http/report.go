package http

import (
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ReportHandler struct {
	Handler
	service port.Service
}

func NewReportHandler(service port.Service, logger *zap.Logger) (*ReportHandler, error) {
	return &ReportHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type dailySalesResp struct {
	Date   string          `json:"fecha"`
	Orders []orderResp     `json:"ventas"`
	Total  decimal.Decimal `json:"total_dia"`
}

// DailySales reports the paid orders of one local calendar day. A
// missing or malformed fecha falls back to today in the report
// timezone; the zero date tells the service to resolve it there.
func (rh *ReportHandler) DailySales(ctx *gin.Context) {
	var date time.Time
	if raw := ctx.Query("fecha"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			date = parsed
		}
	}

	sales, err := rh.service.DailySales(ctx, date)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	orders := make([]orderResp, 0, len(sales.Orders))
	for _, o := range sales.Orders {
		orders = append(orders, newOrderResp(o))
	}

	rh.handleSuccess(ctx, dailySalesResp{
		Date:   sales.Date.Format("2006-01-02"),
		Orders: orders,
		Total:  sales.Total,
	})
}

type debtorOrderResp struct {
	OrderID      string            `json:"pedido_id"`
	Description  string            `json:"descripcion"`
	Total        decimal.Decimal   `json:"total"`
	Installments []installmentResp `json:"historial"`
	Outstanding  decimal.Decimal   `json:"saldo_restante"`
}

type debtorResp struct {
	Customer  string            `json:"cliente"`
	TotalOwed decimal.Decimal   `json:"total_adeudado"`
	Orders    []debtorOrderResp `json:"pedidos"`
}

func (rh *ReportHandler) ListDebtors(ctx *gin.Context) {
	debtors, err := rh.service.ListDebtors(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]debtorResp, 0, len(debtors))
	for _, d := range debtors {
		orders := make([]debtorOrderResp, 0, len(d.Orders))
		for _, o := range d.Orders {
			orders = append(orders, debtorOrderResp{
				OrderID:      o.OrderID.String(),
				Description:  o.Description,
				Total:        o.Total,
				Installments: newInstallmentResps(o.Installments),
				Outstanding:  o.Outstanding,
			})
		}
		result = append(result, debtorResp{
			Customer:  d.Customer,
			TotalOwed: d.TotalOwed,
			Orders:    orders,
		})
	}

	rh.handleSuccess(ctx, result)
}

func newInstallmentResps(installments []domain.Installment) []installmentResp {
	result := make([]installmentResp, 0, len(installments))
	for _, ins := range installments {
		result = append(result, installmentResp{
			At:           ins.At,
			Amount:       ins.Amount,
			BalanceAfter: ins.BalanceAfter,
		})
	}
	return result
}
