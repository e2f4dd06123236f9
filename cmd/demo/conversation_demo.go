package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/infra/adapters/commerce"
	tele "telegram-shop-bot/internal/infra/adapters/telegram"
	"telegram-shop-bot/internal/infra/logging"
	red "telegram-shop-bot/internal/infra/redis"
	"telegram-shop-bot/internal/usecase"
)

// Drives one scripted conversation against the real commerce backend with
// the noop transport, so menu and cart rendering can be checked from the
// logs without a bot token or a live chat.
func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*cfgPath, true)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	logger := logging.New(cfg.Log, true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	defer redisClient.Close()

	tokens, err := commerce.NewCachedTokenSource(cfg.Shop.BaseURL, cfg.Shop.ClientID, redisClient, logger)
	if err != nil {
		log.Fatalf("token source: %v", err)
	}
	shop, err := commerce.NewClient(cfg.Shop.BaseURL, tokens, logger)
	if err != nil {
		log.Fatalf("commerce client: %v", err)
	}

	bot := tele.NewNoopBot(logger)
	engine := usecase.NewEngine(red.NewStateRepo(redisClient), shop, bot, logger)

	chatID := int64(555000111)
	script := []model.UserAction{
		{ChatID: chatID, Kind: model.ActionCommand, Command: "/start"},
		{ChatID: chatID, Kind: model.ActionSelection, Payload: "Cart"},
		{ChatID: chatID, Kind: model.ActionSelection, Payload: "Back"},
	}
	for _, action := range script {
		engine.Handle(ctx, action)
	}

	log.Println("demo conversation finished")
}
