// Package callbacks маршрутизирует callback query по обработчикам.
// Callback data разбирается в типизированное действие один раз здесь,
// дальше обработчики получают уже готовые значения.
package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/callbacktypes"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/common"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/pupil"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbacks/teacher"
	"go.uber.org/zap"
)

// Route распределяет callback query по соответствующим обработчикам.
// Пользователь заново разрешается по базе на каждое нажатие, кнопка
// чужой роли молча игнорируется.
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	h.Logger.Info("Routing callback",
		zap.String("data", callback.Data),
		zap.Int64("telegram_id", callback.From.ID))

	action, err := callbackdata.Decode(callback.Data)
	if err != nil {
		h.Logger.Warn("Unknown callback data",
			zap.String("data", callback.Data),
			zap.Error(err))
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	user, err := h.UserService.GetByTelegramID(ctx, callback.From.ID)
	if err != nil {
		h.Logger.Error("Failed to resolve user",
			zap.Int64("telegram_id", callback.From.ID),
			zap.Error(err))
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	if user == nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	switch a := action.(type) {
	case callbackdata.PupilDay:
		if !user.IsPupil() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		pupil.HandleDay(ctx, b, callback, h, user, a)

	case callbackdata.PupilWeekImage:
		if !user.IsPupil() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		pupil.HandleWeekImage(ctx, b, callback, h, user)

	case callbackdata.ClassMenu:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleClassMenu(ctx, b, callback, h, a)

	case callbackdata.GradeSelect:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleGradeSelect(ctx, b, callback, h, a)

	case callbackdata.ClassSelect:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleClassSelect(ctx, b, callback, h, a)

	case callbackdata.ClassCard:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleClassCard(ctx, b, callback, h, a)

	case callbackdata.AdminDay:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleAdminDay(ctx, b, callback, h, a)

	case callbackdata.EditDay:
		if !user.IsTeacher() {
			common.AnswerCallback(ctx, b, callback.ID, "")
			return
		}
		teacher.HandleEditDay(ctx, b, callback, h, a)

	default:
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
