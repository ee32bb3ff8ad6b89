package common

import (
	"bytes"
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/render"
	"go.uber.org/zap"
)

// SendWeekImage отправляет расписание недели одной картинкой
func SendWeekImage(ctx context.Context, b *bot.Bot, chatID int64, className string, week [][]*model.Lesson, logger *zap.Logger) {
	photo, err := render.WeekImage(className, week)
	if err != nil {
		logger.Error("Failed to render week image",
			zap.String("class", className),
			zap.Error(err))
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(photo)},
		Caption: "Твое расписание на неделю 🗓",
	})
	if err != nil {
		logger.Error("Failed to send week image",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
