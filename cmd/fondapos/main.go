package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dquintana/fondapos/internal/adapter/config"
	"github.com/dquintana/fondapos/internal/adapter/handler/http"
	"github.com/dquintana/fondapos/internal/adapter/logger"
	"github.com/dquintana/fondapos/internal/adapter/storage"
	"github.com/dquintana/fondapos/internal/adapter/storage/repository"
	"github.com/dquintana/fondapos/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	location, err := time.LoadLocation(conf.App.ReportTimezone)
	if err != nil {
		log.Error("timezone loading error", zap.Error(err))
		return
	}

	inventory, err := service.NewInventoryLedger(repo, log.Named("Inventory"))
	if err != nil {
		log.Error("inventory ledger creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, repo, inventory, location,
		conf.App.RestockOnDelete, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	reportHandler, err := http.NewReportHandler(svc, log.Named("Report handler"))
	if err != nil {
		log.Error("report handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(repo, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, paymentHandler, reportHandler, productHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
