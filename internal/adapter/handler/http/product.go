package http

import (
	"net/http"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/dquintana/fondapos/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// ProductHandler exposes the minimum catalog surface the register
// needs: creating and listing products. Catalog editing and price
// history belong to the catalog component, not this service.
type ProductHandler struct {
	Handler
	catalog port.Catalog
}

func NewProductHandler(catalog port.Catalog, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		catalog: catalog,
	}, nil
}

type productRequest struct {
	Name     string  `json:"nombre"`
	Category string  `json:"categoria"`
	Price    float64 `json:"precio"`
	Stock    *int    `json:"stock"`
}

type productResp struct {
	ID       string          `json:"id"`
	Name     string          `json:"nombre"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Stock    *int            `json:"stock,omitempty"`
}

func newProductResp(p *domain.Product) productResp {
	return productResp{
		ID:       p.ID.String(),
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := productRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product := &domain.Product{
		ID:       uuid.New(),
		Name:     req.Name,
		Category: req.Category,
		Price:    price,
	}
	// Stock is stored only for the tracked category; anything else
	// keeps a nil counter, never a zero sentinel.
	if req.Category == domain.CategoryBeverage {
		stock := 0
		if req.Stock != nil {
			stock = *req.Stock
		}
		product.Stock = &stock
	}

	created, err := ph.catalog.CreateProduct(ctx, product)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResp(created), http.StatusCreated)
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.catalog.GetProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResp(product))
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	list, err := ph.catalog.ListProducts(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]productResp, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResp(p))
	}
	ph.handleSuccess(ctx, result)
}
