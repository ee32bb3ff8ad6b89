package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/callbackdata"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"go.uber.org/zap"
)

// HandlePupilSchedule обрабатывает кнопку "Моё расписание" ученика
func (h *Handlers) HandlePupilSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.deleteMessage(ctx, b, update)

	user := h.resolveUser(ctx, update)
	if user == nil || !user.IsPupil() {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, keyboards.DayPickerText(time.Now()), keyboards.PupilWeek())
}

// HandleTeacherClasses обрабатывает кнопку "Класс" учителя
func (h *Handlers) HandleTeacherClasses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.deleteMessage(ctx, b, update)

	user := h.resolveUser(ctx, update)
	if user == nil || !user.IsTeacher() {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, "Действия с Классами 📖", keyboards.ClassMenuActions())
}

// HandleTeacherSchedule обрабатывает кнопку "Расписание" учителя
func (h *Handlers) HandleTeacherSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.deleteMessage(ctx, b, update)

	user := h.resolveUser(ctx, update)
	if user == nil || !user.IsTeacher() {
		return
	}

	grades, err := h.classService.ListGrades(ctx)
	if err != nil {
		h.logger.Error("Failed to list grades", zap.Error(err))
		return
	}

	answer := "Действия с Расписанием 📝"
	var keyboard models.ReplyMarkup
	if markup := keyboards.GradeList(grades, callbackdata.PurposeSchedule); markup != nil {
		keyboard = markup
	} else {
		answer = "Для начала необходимо создать класс"
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, answer, keyboard)
}
