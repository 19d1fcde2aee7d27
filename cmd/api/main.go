package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleksandar-ristic/StarterStore/internal/config"
	"github.com/aleksandar-ristic/StarterStore/internal/db"
	"github.com/aleksandar-ristic/StarterStore/internal/httpserver"
	orderrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/order"
	productrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/product"
	tokenrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/token"
	userrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/user"
	ordersvc "github.com/aleksandar-ristic/StarterStore/internal/service/order"
	productsvc "github.com/aleksandar-ristic/StarterStore/internal/service/product"
	usersvc "github.com/aleksandar-ristic/StarterStore/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	orderRepo := orderrepo.NewPostgres(dbpool)
	orderService := ordersvc.New(orderRepo)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	userService := usersvc.New(userRepo, tokenRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:     productService,
		OrderSvc:       orderService,
		UserSvc:        userService,
		PayPalClientID: cfg.PayPalClientID,
		FrontendOrigin: cfg.FrontendOrigin,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
