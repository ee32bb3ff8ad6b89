package common

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/keyboards"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/render"
	"go.uber.org/zap"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// StateKey строит ключ состояния диалога из callback query
func StateKey(callback *models.CallbackQuery) (state.Key, bool) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return state.Key{}, false
	}
	return state.Key{ChatID: msg.Chat.ID, UserID: callback.From.ID}, true
}

// SendMessage отправляет сообщение и логирует если не удалось
func SendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard models.ReplyMarkup, logger *zap.Logger) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// DeleteCallbackMessage удаляет сообщение, на котором нажали кнопку
func DeleteCallbackMessage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})
}

// SendInviteQR отправляет фото с QR-кодом пригласительной ссылки класса
func SendInviteQR(ctx context.Context, b *bot.Bot, chatID int64, botUsername string, class *model.SchoolClass, logger *zap.Logger) {
	link := fmt.Sprintf("https://t.me/%s?start=%s", botUsername, class.InviteCode)

	photo, err := render.InviteQR(link)
	if err != nil {
		logger.Error("Failed to render invite QR",
			zap.Int64("class_id", class.ID),
			zap.Error(err))
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "qrcode.png", Data: bytes.NewReader(photo)},
		Caption: keyboards.InviteCaption,
	})
	if err != nil {
		logger.Error("Failed to send invite QR",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
