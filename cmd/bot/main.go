package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myschedule/class_schedule_bot/internal/app"
	"github.com/myschedule/class_schedule_bot/internal/config"
	"github.com/myschedule/class_schedule_bot/internal/controller"
	"github.com/myschedule/class_schedule_bot/internal/repository"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting class schedule bot",
		zap.String("environment", cfg.Environment),
		zap.String("school", cfg.SchoolName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	schoolRepo := repository.NewSchoolRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)

	// Школа одна на процесс, создаётся при первом запуске
	school, err := schoolRepo.GetOrCreate(ctx, cfg.SchoolName)
	if err != nil {
		logger.Fatal("Failed to resolve school", zap.Error(err))
	}

	userService := service.NewUserService(userRepo, logger)
	classService := service.NewClassService(classRepo, scheduleRepo, school, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, logger)
	notifier := service.NewNotifier(userRepo, logger)

	b, err := bot.New(cfg.BotToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		logger.Fatal("Failed to get bot identity", zap.Error(err))
	}
	logger.Info("Bot authorized", zap.String("username", me.Username))

	botController := controller.NewBotController(
		b,
		userService,
		classService,
		scheduleService,
		notifier,
		cfg.RootAdminID,
		me.Username,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
