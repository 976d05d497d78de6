package http

import (
	"net/http"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type itemRequest struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
}

type orderRequest struct {
	Customer    string        `json:"cliente"`
	Description string        `json:"descripcion"`
	Items       []itemRequest `json:"productos"`
}

// parseItems resolves request rows to service item requests. A missing
// quantity defaults to one; malformed product ids are dropped, matching
// the silent skip of unknown ids inside a batch.
func parseItems(items []itemRequest) []port.ItemRequest {
	result := make([]port.ItemRequest, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			continue
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		result = append(result, port.ItemRequest{ProductID: id, Quantity: qty})
	}
	return result
}

type lineItemResp struct {
	ProductID string          `json:"producto_id"`
	Name      string          `json:"nombre"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

type orderResp struct {
	ID           string            `json:"id"`
	Customer     string            `json:"cliente"`
	Description  string            `json:"descripcion"`
	Items        []lineItemResp    `json:"productos"`
	Total        decimal.Decimal   `json:"total"`
	Status       string            `json:"estado"`
	CreatedAt    time.Time         `json:"fecha"`
	PaidAt       *time.Time        `json:"fecha_pago,omitempty"`
	Method       string            `json:"metodo_pago,omitempty"`
	Installments []installmentResp `json:"historial_creditos,omitempty"`
}

type installmentResp struct {
	At           time.Time       `json:"fecha"`
	Amount       decimal.Decimal `json:"monto"`
	BalanceAfter decimal.Decimal `json:"saldo_restante"`
}

func newOrderResp(o *domain.Order) orderResp {
	items := make([]lineItemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, lineItemResp{
			ProductID: it.ProductID.String(),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	installments := make([]installmentResp, 0, len(o.Installments))
	for _, ins := range o.Installments {
		installments = append(installments, installmentResp{
			At:           ins.At,
			Amount:       ins.Amount,
			BalanceAfter: ins.BalanceAfter,
		})
	}
	return orderResp{
		ID:           o.ID.String(),
		Customer:     o.Customer,
		Description:  o.Description,
		Items:        items,
		Total:        o.Total,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		PaidAt:       o.PaidAt,
		Method:       string(o.PaymentMethod),
		Installments: installments,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := orderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CreateOrder(ctx, req.Customer, req.Description, parseItems(req.Items))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) EditOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := orderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.EditOrder(ctx, orderID, req.Customer, req.Description, parseItems(req.Items))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.DeleteOrder(ctx, orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type addItemResp struct {
	Items []lineItemResp  `json:"productos"`
	Total decimal.Decimal `json:"total"`
}

func (oh *OrderHandler) AddLineItem(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := itemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	order, err := oh.service.AddLineItem(ctx, orderID, productID, qty)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := newOrderResp(order)
	oh.handleSuccess(ctx, addItemResp{Items: resp.Items, Total: order.Total})
}

type customerRequest struct {
	Customer string `json:"cliente"`
}

func (oh *OrderHandler) SetCustomer(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := customerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.SetCustomer(ctx, orderID, req.Customer)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"cliente": order.Customer})
}

type statusRequest struct {
	Status string `json:"estado"`
}

func (oh *OrderHandler) SetStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := statusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.SetStatus(ctx, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"estado": string(order.Status)})
}

func (oh *OrderHandler) ListActiveOrders(ctx *gin.Context) {
	list, err := oh.service.ListActiveOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.listResponse(ctx, list)
}

func (oh *OrderHandler) ListPaidOrders(ctx *gin.Context) {
	list, err := oh.service.ListPaidOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.listResponse(ctx, list)
}

func (oh *OrderHandler) listResponse(ctx *gin.Context, list []*domain.Order) {
	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}
	oh.handleSuccess(ctx, result)
}
