package teacher

import (
	"context"
	"fmt"

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

// Заготовка списка уроков для пустого дня
const lessonsPlaceholder = "Первый урок\nВторой урок\nТретий урок"

// HandleAdminDay показывает учителю расписание класса на выбранный день
func HandleAdminDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.AdminDay) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)

	if action.Back {
		sendLetterPicker(ctx, b, msg.Chat.ID, h, action.Grade, callbackdata.PurposeSchedule)
		return
	}

	class, ok := resolveClass(ctx, h, action.Grade, action.Letter)
	if !ok {
		return
	}

	lessons, err := h.ScheduleService.GetDayLessons(ctx, class.ID, action.Day)
	if err != nil {
		h.Logger.Error("Failed to get day lessons",
			zap.Int64("class_id", class.ID),
			zap.Int("day", action.Day),
			zap.Error(err))
		return
	}

	if len(lessons) == 0 {
		common.SendMessage(ctx, b, msg.Chat.ID,
			fmt.Sprintf("На %s у %s нет расписания", model.DayName(action.Day), class.Name()),
			keyboards.EditDay(class.Grade, class.Letter, action.Day, "Создать"), h.Logger)
		return
	}

	common.SendMessage(ctx, b, msg.Chat.ID,
		keyboards.DaySchedule(class, action.Day, lessons),
		keyboards.EditDay(class.Grade, class.Letter, action.Day, "Редактировать"), h.Logger)
}

// HandleEditDay запускает диалог редактирования расписания дня
func HandleEditDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action callbackdata.EditDay) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	key, ok := common.StateKey(callback)
	if !ok {
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)

	class, classOK := resolveClass(ctx, h, action.Grade, action.Letter)
	if !classOK {
		return
	}

	if action.Back {
		sendAdminDayPicker(ctx, b, key.ChatID, h, class)
		return
	}

	lessons, err := h.ScheduleService.EnsureDayLessons(ctx, class.ID, action.Day)
	if err != nil {
		h.Logger.Error("Failed to ensure day lessons",
			zap.Int64("class_id", class.ID),
			zap.Int("day", action.Day),
			zap.Error(err))
		return
	}

	// Текущий список подставляется в сообщение, чтобы его можно
	// было скопировать и поправить
	current := lessonsPlaceholder
	if len(lessons) > 0 {
		current = keyboards.LessonNames(lessons)
	}

	h.StateManager.SetData(key, "class_grade", class.Grade)
	h.StateManager.SetData(key, "class_letter", class.Letter)
	h.StateManager.SetData(key, "day", action.Day)
	h.StateManager.SetState(key, state.StateScheduleLessons)

	common.SendMessage(ctx, b, key.ChatID,
		fmt.Sprintf(
			"Отправьте расписание на <b>%s</b> одним сообщением, каждый урок с новой строки.\n\n<b>Нажмите, чтобы скопировать:</b>\n<pre>%s</pre>",
			model.DayName(action.Day), current,
		), nil, h.Logger)
}

func sendAdminDayPicker(ctx context.Context, b *bot.Bot, chatID int64, h *callbacktypes.Handler, class *model.SchoolClass) {
	common.SendMessage(ctx, b, chatID,
		fmt.Sprintf("🗓 Выберите день для редактирования расписания %s", class.Name()),
		keyboards.AdminWeek(class), h.Logger)
}
