package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Freeeeeet/school_calendar/internal/api"
	"github.com/Freeeeeet/school_calendar/internal/app"
	"github.com/Freeeeeet/school_calendar/internal/config"
	"github.com/Freeeeeet/school_calendar/internal/controller"
	"github.com/Freeeeeet/school_calendar/internal/repository"
	"github.com/Freeeeeet/school_calendar/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("🚀 Starting school calendar",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Location().String()),
		zap.Bool("bot_enabled", cfg.TelegramToken != ""))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("School calendar stopped with error", zap.Error(err))
	}
	logger.Info("👋 School calendar stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	calendarService := service.NewCalendarService(
		repository.NewScheduleSlotRepository(pool),
		repository.NewAcademicYearRepository(pool),
		repository.NewDatedItemRepository(pool),
		cfg.Location(),
		cfg.CacheTTL,
		logger.Named("calendar"),
	)
	exportService := service.NewExportService(calendarService, logger.Named("export"))

	scheduler := app.NewScheduler(calendarService, cfg.RefreshInterval, logger.Named("scheduler"))

	server := api.NewServer(&api.Options{
		Address:  cfg.HTTPAddr,
		Debug:    !cfg.IsProduction(),
		Calendar: calendarService,
		Export:   exportService,
		Logger:   logger.Named("api"),
	})

	var botController *controller.BotController
	if cfg.TelegramToken != "" {
		b, err := bot.New(cfg.TelegramToken)
		if err != nil {
			return err
		}

		botController = controller.NewBotController(b, calendarService, logger.Named("bot"))
		if err := botController.RegisterHandlers(ctx); err != nil {
			logger.Warn("Bot commands menu was not updated", zap.Error(err))
		}
		scheduler.WithStateEviction(botController.StateManager(), cfg.ChatStateTTL)
	} else {
		logger.Warn("⚠️  TELEGRAM_TOKEN is empty, running HTTP API only")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	})
	if botController != nil {
		g.Go(func() error {
			return botController.Start(gctx)
		})
	}

	scheduler.Start(gctx)
	defer scheduler.Stop()

	return g.Wait()
}
