package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/miteshrathod09/sick-fits/internal/client"
	"github.com/miteshrathod09/sick-fits/internal/config"
	"github.com/miteshrathod09/sick-fits/internal/graph"
	"github.com/miteshrathod09/sick-fits/internal/logger"
	"github.com/miteshrathod09/sick-fits/internal/repository"
	"github.com/miteshrathod09/sick-fits/internal/server"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	if cfg.AppSecret == "" {
		log.Fatal().Msg("APP_SECRET is not set")
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)

	var paymentClient client.PaymentClient
	switch cfg.Payment.Provider {
	case "braintree":
		paymentClient = client.NewBraintreeClient(&cfg.Braintree)
	default:
		paymentClient = client.NewStripeClient(&cfg.Stripe)
	}
	mailClient := client.NewMailClient(&cfg.Mail)

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, mailClient, cfg.AppSecret, cfg.FrontendURL, log)
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, log)
	cartService := service.NewCartService(cartRepo, itemRepo, log)
	orderService := service.NewOrderService(db, orderRepo, cartRepo, paymentClient, mailClient, cfg.Payment.Currency, log)

	resolver := graph.NewResolver(authService, userService, itemService, cartService, orderService, log)
	schema, err := graph.ParseSchema(resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse graphql schema")
	}

	srv := server.NewServer(cfg, schema, authService, userService, log)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info().Str("addr", serverAddr).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
