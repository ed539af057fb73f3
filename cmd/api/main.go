package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	cartstore "henawys-art/internal/cart"
	"henawys-art/internal/config"
	"henawys-art/internal/db"
	"henawys-art/internal/httpserver"
	"henawys-art/internal/messaging/kafka"
	couponrepo "henawys-art/internal/repository/coupon"
	orderrepo "henawys-art/internal/repository/order"
	productrepo "henawys-art/internal/repository/product"
	shippingrepo "henawys-art/internal/repository/shippingrate"
	visitrepo "henawys-art/internal/repository/visit"
	cartsvc "henawys-art/internal/service/cart"
	catalogsvc "henawys-art/internal/service/catalog"
	checkoutsvc "henawys-art/internal/service/checkout"
	ordersvc "henawys-art/internal/service/order"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer redisClient.Close()

	publisher, pubCloser := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer pubCloser.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	couponRepo := couponrepo.NewPostgres(dbpool)
	shippingRepo := shippingrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	visitRepo := visitrepo.NewPostgres(dbpool)

	store := cartstore.NewRedis(redisClient, cfg.CartTTL)
	hub := httpserver.NewHub()

	catalogService := catalogsvc.New(productRepo, shippingRepo)
	cartService := cartsvc.New(store, productRepo, couponRepo)
	checkoutService := checkoutsvc.New(store, shippingRepo, couponRepo, orderRepo, publisher, cfg.WhatsAppNumber, logger)
	orderService := ordersvc.New(orderRepo, hub)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:     catalogService,
		CartSvc:        cartService,
		CheckoutSvc:    checkoutService,
		OrderSvc:       orderService,
		CouponRepo:     couponRepo,
		VisitRepo:      visitRepo,
		Hub:            hub,
		AdminAPIKey:    cfg.AdminAPIKey,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
