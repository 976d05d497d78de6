package http

import (
	"github.com/dquintana/fondapos/internal/adapter/config"
	"github.com/gin-gonic/gin"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	reportHandler *ReportHandler,
	productHandler *ProductHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/active", orderHandler.ListActiveOrders)
			orders.GET("/paid", orderHandler.ListPaidOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.EditOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
			orders.POST("/:id/items", orderHandler.AddLineItem)
			orders.POST("/:id/customer", orderHandler.SetCustomer)
			orders.POST("/:id/status", orderHandler.SetStatus)
			orders.POST("/:id/payment", paymentHandler.Pay)
			orders.POST("/:id/installments", paymentHandler.AddInstallment)
		}

		api.GET("/debtors", reportHandler.ListDebtors)
		api.GET("/sales/daily", reportHandler.DailySales)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
