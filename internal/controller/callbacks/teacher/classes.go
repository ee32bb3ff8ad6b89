// Package teacher обрабатывает inline-кнопки учителя: навигацию по
// классам, карточку класса и редактирование расписания.
package teacher

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/callbacktypes"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/common"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"go.uber.org/zap"
)

// HandleClassMenu обрабатывает меню "Класс": просмотр или создание
func HandleClassMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.ClassMenu) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	key, ok := common.StateKey(callback)
	if !ok {
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)

	if action.Create {
		h.StateManager.SetState(key, state.StateClassGrade)
		common.SendMessage(ctx, b, key.ChatID,
			"Введите цифру класса:", keyboards.BackMenu(), h.Logger)
		return
	}

	sendGradePicker(ctx, b, key.ChatID, h, callbackdata.PurposeClassrooms)
}

// HandleGradeSelect показывает классы выбранной параллели
func HandleGradeSelect(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.GradeSelect) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)
	sendLetterPicker(ctx, b, msg.Chat.ID, h, action.Grade, action.Purpose)
}

// HandleClassSelect показывает карточку класса или выбор дня
// расписания, в зависимости от цели списка
func HandleClassSelect(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.ClassSelect) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)

	if action.Back {
		sendGradePicker(ctx, b, msg.Chat.ID, h, action.Purpose)
		return
	}

	class, ok := resolveClass(ctx, h, action.Grade, action.Letter)
	if !ok {
		return
	}

	switch action.Purpose {
	case callbackdata.PurposeSchedule:
		sendAdminDayPicker(ctx, b, msg.Chat.ID, h, class)
	default:
		sendClassCard(ctx, b, msg.Chat.ID, h, class)
	}
}

// HandleClassCard обрабатывает действия в карточке класса
func HandleClassCard(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.ClassCard) {
	switch action.Op {
	case callbackdata.ClassCardQR:
		common.AnswerCallback(ctx, b, callback.ID, "")

		msg := common.GetMessageFromCallback(callback)
		if msg == nil {
			return
		}

		class, ok := resolveClass(ctx, h, action.Grade, action.Letter)
		if !ok {
			return
		}

		common.SendInviteQR(ctx, b, msg.Chat.ID, h.BotUsername, class, h.Logger)

	case callbackdata.ClassCardEdit:
		common.AnswerCallbackAlert(ctx, b, callback.ID, "Пока класс редактировать нельзя")

	case callbackdata.ClassCardDelete:
		common.AnswerCallbackAlert(ctx, b, callback.ID, "Пока класс удалить нельзя")

	case callbackdata.ClassCardBack:
		common.AnswerCallback(ctx, b, callback.ID, "")

		msg := common.GetMessageFromCallback(callback)
		if msg == nil {
			return
		}

		common.DeleteCallbackMessage(ctx, b, callback)
		sendLetterPicker(ctx, b, msg.Chat.ID, h, action.Grade, callbackdata.PurposeClassrooms)

	default:
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}

// resolveClass достаёт класс по цифре и букве из callback data.
// Устаревшая кнопка (класс уже удалили) молча игнорируется.
func resolveClass(ctx context.Context, h *callbacktypes.Handler, grade int, letter string) (*model.SchoolClass, bool) {
	class, err := h.ClassService.GetByGradeAndLetter(ctx, grade, letter)
	if err != nil {
		h.Logger.Error("Failed to resolve class",
			zap.Int("grade", grade),
			zap.String("letter", letter),
			zap.Error(err))
		return nil, false
	}
	if class == nil {
		return nil, false
	}
	return class, true
}

func sendGradePicker(ctx context.Context, b *bot.Bot, chatID int64, h *callbacktypes.Handler, purpose callbackdata.Purpose) {
	grades, err := h.ClassService.ListGrades(ctx)
	if err != nil {
		h.Logger.Error("Failed to list grades", zap.Error(err))
		return
	}

	markup := keyboards.GradeList(grades, purpose)
	if markup == nil {
		common.SendMessage(ctx, b, chatID,
			"Для начала необходимо создать класс", keyboards.TeacherMenu(), h.Logger)
		return
	}

	common.SendMessage(ctx, b, chatID, "Выберите параллель:", markup, h.Logger)
}

func sendLetterPicker(ctx context.Context, b *bot.Bot, chatID int64, h *callbacktypes.Handler, grade int, purpose callbackdata.Purpose) {
	letters, err := h.ClassService.ListLettersByGrade(ctx, grade)
	if err != nil {
		h.Logger.Error("Failed to list letters",
			zap.Int("grade", grade),
			zap.Error(err))
		return
	}

	common.SendMessage(ctx, b, chatID,
		"Выберите класс:", keyboards.LetterList(grade, letters, purpose), h.Logger)
}

func sendClassCard(ctx context.Context, b *bot.Bot, chatID int64, h *callbacktypes.Handler, class *model.SchoolClass) {
	pupils, err := h.UserService.GetClassPupils(ctx, class.ID)
	if err != nil {
		h.Logger.Error("Failed to get class pupils",
			zap.Int64("class_id", class.ID),
			zap.Error(err))
		return
	}

	common.SendMessage(ctx, b, chatID,
		keyboards.ClassInfo(class, pupils), keyboards.ClassCard(class), h.Logger)
}
