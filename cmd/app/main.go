// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/infra/adapters/commerce"
	tele "telegram-shop-bot/internal/infra/adapters/telegram"
	"telegram-shop-bot/internal/infra/logging"
	"telegram-shop-bot/internal/infra/metrics"
	red "telegram-shop-bot/internal/infra/redis"
	"telegram-shop-bot/internal/infra/web"
	"telegram-shop-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs)")
	flag.Parse()

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("developer mode enabled")
	}

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()

	stateRepo := red.NewStateRepo(redisClient)
	rateLimiter := red.NewRateLimiter(redisClient)

	// ---- Commerce backend ----
	tokens, err := commerce.NewCachedTokenSource(cfg.Shop.BaseURL, cfg.Shop.ClientID, redisClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("token source")
	}
	shop, err := commerce.NewClient(cfg.Shop.BaseURL, tokens, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("commerce client")
	}

	// ---- Telegram + engine ----
	bot, err := tele.NewBot(&cfg.Bot, rateLimiter, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}
	engine := usecase.NewEngine(stateRepo, shop, bot, logger)

	go func() {
		if err := bot.StartPolling(ctx, engine); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Ops server ----
	metrics.MustRegister()
	ops := web.NewServer(redisClient.Ping, logger)
	server := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Ops.Port), Handler: ops.Router()}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("ops server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("ops server")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = server.Shutdown(shCtx)
}
