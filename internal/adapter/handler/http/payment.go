package http

import (
	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentRequest struct {
	Method   string `json:"metodo_pago"`
	Tendered string `json:"monto_entregado"`
	Amount   string `json:"monto_abono"`
}

// Pay settles an order. Cash requires a parseable tendered amount; a
// malformed credit amount falls back to zero instead of failing, the
// way the register always behaved.
func (ph *PaymentHandler) Pay(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := paymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	var order *domain.Order
	switch domain.PaymentMethod(req.Method) {
	case domain.PaymentCash:
		tendered, err := decimal.Parse(req.Tendered)
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
		order, err = ph.service.PayCash(ctx, orderID, tendered)
		if err != nil {
			ph.handleError(ctx, err)
			return
		}
	case domain.PaymentCredit:
		amount, err := decimal.Parse(req.Amount)
		if err != nil {
			amount = decimal.Zero
		}
		order, err = ph.service.PayCredit(ctx, orderID, amount)
		if err != nil {
			ph.handleError(ctx, err)
			return
		}
	default:
		order, err = ph.service.PayOther(ctx, orderID, domain.PaymentMethod(req.Method))
		if err != nil {
			ph.handleError(ctx, err)
			return
		}
	}

	ph.handleSuccess(ctx, newOrderResp(order))
}

type installmentRequest struct {
	Amount string `json:"monto_abono"`
}

func (ph *PaymentHandler) AddInstallment(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := installmentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.Parse(req.Amount)
	if err != nil {
		ph.handleError(ctx, domain.ErrInvalidInstallment)
		return
	}

	order, err := ph.service.AddInstallment(ctx, orderID, amount)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResp(order))
}
