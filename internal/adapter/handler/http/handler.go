package http

import (
	"errors"
	"net/http"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrProductNotFound: http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrEmptyOrderItems:    http.StatusBadRequest,
	domain.ErrEmptyCustomerName:  http.StatusBadRequest,
	domain.ErrInvalidOrderStatus: http.StatusBadRequest,
	domain.ErrInvalidInstallment: http.StatusBadRequest,
	domain.ErrInsufficientStock:  http.StatusUnprocessableEntity,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	for sentinel, statusCode := range errorStatusMap {
		if errors.Is(err, sentinel) {
			ctx.JSON(statusCode, errorResponse{Error: err.Error()})
			return
		}
	}
	h.logger.Error("error processing request", zap.Error(err))
	ctx.Status(http.StatusInternalServerError)
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
