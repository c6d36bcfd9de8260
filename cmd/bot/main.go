package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
	"github.com/aliskhannn/flag-quiz-bot/internal/delivery/rest"
	"github.com/aliskhannn/flag-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres/repository"
	redisinfra "github.com/aliskhannn/flag-quiz-bot/internal/infra/redis"
	"github.com/aliskhannn/flag-quiz-bot/internal/logger"
	"github.com/aliskhannn/flag-quiz-bot/internal/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
	"github.com/aliskhannn/flag-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Static data.
	catalog, err := repository.NewCountryRepository(cfg.Data.CountriesPath, cfg.Data.PresetsPath)
	if err != nil {
		lg.Fatal("failed to load country catalog", zap.Error(err))
	}

	flags := repository.NewFlagRepository(cfg.Data.FlagsDir, cfg.Data.FlagsURLTemplate)
	if missing := flags.Missing(catalog.Codes()); len(missing) > 0 {
		lg.Warn("flag images missing",
			zap.Int("count", len(missing)),
			zap.Strings("codes", missing),
		)
	}

	// Postgres.
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("invalid database config", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	transactor := postgres.NewTransactor(pool)
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	resultRepo := pgrepo.NewResultRepository(pool, transactor)
	resetRepo := pgrepo.NewResetRepository(transactor)

	// Redis.
	redisClient, err := redisinfra.NewClient(ctx, redisinfra.ClientConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lg.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	leaderboard := redisinfra.NewLeaderboard(redisClient)

	// Game.
	sessions := storage.NewSessionStorage()
	gameService := service.NewGameService(
		catalog,
		sessions,
		settingsRepo,
		resultRepo,
		leaderboard,
		service.NewRand(cfg.Quiz.Seed),
		cfg.Quiz.Choices,
		lg.Named("game"),
	)
	resetService := service.NewResetService(sessions, resetRepo, leaderboard, lg.Named("reset"))

	// Telegram.
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	handler := telegram.NewHandler(bot, lg.Named("telegram"), gameService, resetService, flags, cfg.Leaderboard.Size)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return handler.Run(gctx)
	})

	g.Go(func() error {
		return sessions.RunJanitor(gctx, cfg.Sessions.SweepInterval, cfg.Sessions.IdleTTL, lg.Named("sessions"))
	})

	if cfg.HTTP.Enabled {
		if cfg.Env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		httpLogger := lg.Named("http")
		router := rest.NewRouter(
			rest.NewHandler(gameService, resetService, httpLogger, cfg.Leaderboard.Size),
			httpLogger,
			flags.Dir(),
		)
		server := rest.NewServer(cfg.HTTP.Addr, router, cfg.HTTP.ShutdownTimeout, httpLogger)

		g.Go(func() error {
			return server.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("application stopped with error", zap.Error(err))
		return
	}

	lg.Info("shutdown complete")
}
