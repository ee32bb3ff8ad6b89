// Package pupil обрабатывает inline-кнопки ученика: выбор дня
// расписания и картинка недели.
package pupil

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/callbacktypes"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/common"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"go.uber.org/zap"
)

// HandleDay показывает расписание ученика на выбранный день
func HandleDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, user *model.User, action callbackdata.PupilDay) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	if action.Back {
		common.DeleteCallbackMessage(ctx, b, callback)
		common.SendMessage(ctx, b, msg.Chat.ID,
			keyboards.DayPickerText(time.Now()), keyboards.PupilWeek(), h.Logger)
		return
	}

	if user.SchoolClassID == nil {
		// Ученик без класса - кнопка пережила удаление класса
		return
	}

	lessons, err := h.ScheduleService.GetDayLessons(ctx, *user.SchoolClassID, action.Day)
	if err != nil {
		h.Logger.Error("Failed to get day lessons",
			zap.Int64("class_id", *user.SchoolClassID),
			zap.Int("day", action.Day),
			zap.Error(err))
		return
	}

	if lessons == nil {
		// Дня ещё нет: выбор дней остаётся на экране
		common.SendMessage(ctx, b, msg.Chat.ID,
			"Твой учитель еще не добавил расписания на этот день😓", nil, h.Logger)
		return
	}

	common.DeleteCallbackMessage(ctx, b, callback)
	common.SendMessage(ctx, b, msg.Chat.ID,
		keyboards.PupilDaySchedule(action.Day, lessons),
		keyboards.BackToPupilDays(), h.Logger)
}

// HandleWeekImage отправляет расписание недели одной картинкой
func HandleWeekImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, user *model.User) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	if user.SchoolClassID == nil {
		return
	}

	class, err := h.ClassService.GetByID(ctx, *user.SchoolClassID)
	if err != nil {
		h.Logger.Error("Failed to get class",
			zap.Int64("class_id", *user.SchoolClassID),
			zap.Error(err))
		return
	}
	if class == nil {
		return
	}

	week, err := h.ScheduleService.GetWeekLessons(ctx, class.ID)
	if err != nil {
		h.Logger.Error("Failed to get week lessons",
			zap.Int64("class_id", class.ID),
			zap.Error(err))
		return
	}

	common.SendWeekImage(ctx, b, msg.Chat.ID, class.Name(), week, h.Logger)
}
