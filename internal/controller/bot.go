package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/callbacktypes"
	"github.com/myschedule/class_schedule_bot/internal/controller/handlers"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacktypes.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	classService *service.ClassService,
	scheduleService *service.ScheduleService,
	notifier *service.Notifier,
	rootAdminID int64,
	botUsername string,
	logger *zap.Logger,
) *BotController {
	// Состояния диалогов живут в памяти процесса
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		classService,
		scheduleService,
		notifier,
		stateManager,
		rootAdminID,
		botUsername,
		logger,
	)

	callbackHandler := &callbacktypes.Handler{
		UserService:     userService,
		ClassService:    classService,
		ScheduleService: scheduleService,
		StateManager:    stateManager,
		BotUsername:     botUsername,
		Logger:          logger,
	}

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// /start матчится по префиксу: deep link приходит как "/start <код>"
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/add_admin", bot.MatchTypePrefix, c.handlers.HandleAddAdmin)

	// Кнопки reply-меню
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboards.ButtonPupilSchedule, bot.MatchTypeExact, c.handlers.HandlePupilSchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboards.ButtonTeacherClasses, bot.MatchTypeExact, c.handlers.HandleTeacherClasses)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboards.ButtonTeacherSchedule, bot.MatchTypeExact, c.handlers.HandleTeacherSchedule)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleCallbackQuery)

	return c.setCommands(ctx)
}

func (c *BotController) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	callbacks.Route(ctx, b, update.CallbackQuery, c.callbackHandler)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
