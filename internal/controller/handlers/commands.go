package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"go.uber.org/zap"
)

// HandleStart обрабатывает /start, в том числе deep link с
// пригласительным кодом класса
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	answer := keyboards.GreetingText
	var keyboard models.ReplyMarkup

	user := h.resolveUser(ctx, update)

	switch {
	case user != nil && user.IsPupil():
		answer = keyboards.PupilGreetingText
		keyboard = keyboards.PupilMenu()

	case user != nil && user.IsTeacher():
		keyboard = keyboards.TeacherMenu()

	default:
		// Незнакомец: если в deep link есть живой пригласительный код,
		// начинаем регистрацию ученика
		token := startArg(update.Message.Text)
		if token == "" {
			break
		}

		class, err := h.classService.GetByInviteCode(ctx, token)
		if err != nil {
			h.logger.Error("Failed to look up invite code", zap.Error(err))
			break
		}
		if class == nil {
			break
		}

		answer = keyboards.GreetingText + "\n\nПожалуйста, введите вашу Фамилию и Имя."

		key := stateKey(update)
		h.stateManager.SetState(key, state.StatePupilFullname)
		h.stateManager.SetData(key, "invite_code", token)
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, answer, keyboard)
	h.deleteMessage(ctx, b, update)
}

// HandleAddAdmin обрабатывает /add_admin - создание учителя.
// Доступно только root-администратору, для остальных команда молча
// игнорируется.
func (h *Handlers) HandleAddAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.From.ID != h.rootAdminID {
		return
	}

	h.deleteMessage(ctx, b, update)

	args := strings.Fields(update.Message.Text)[1:]

	telegramID, err := parseAdminArgs(args)
	if err != nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"Необходимо написать команду в формате <code>/add_admin 1230154081 Пирштук Роман</code>", nil)
		return
	}

	fullName := args[1] + " " + args[2]

	teacher, err := h.userService.RegisterTeacher(ctx, telegramID, fullName, h.classService.School().ID)
	if err != nil {
		h.logger.Error("Failed to register teacher",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"❌ Не удалось создать учителя. Возможно, такой пользователь уже есть.", nil)
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("Создан учитель (id %d) %s с TelegramId %d", teacher.ID, fullName, telegramID), nil)
}

// startArg извлекает аргумент deep link из текста /start
func startArg(text string) string {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func parseAdminArgs(args []string) (int64, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	return strconv.ParseInt(args[0], 10, 64)
}
