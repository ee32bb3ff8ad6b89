package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"go.uber.org/zap"
)

// stateKey строит ключ состояния диалога из входящего сообщения
func stateKey(update *models.Update) state.Key {
	return state.Key{
		ChatID: update.Message.Chat.ID,
		UserID: update.Message.From.ID,
	}
}

// resolveUser получает текущего пользователя по отправителю сообщения.
// Личность не кешируется в сессии: каждое событие заново смотрит в базу.
func (h *Handlers) resolveUser(ctx context.Context, update *models.Update) *model.User {
	telegramID := update.Message.From.ID

	user, err := h.userService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to resolve user",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return nil
	}

	return user
}

// deleteMessage удаляет входящее сообщение, как это делал бы оригинал
// меню: чат остаётся чистым, историю ведут ответы бота
func (h *Handlers) deleteMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    update.Message.Chat.ID,
		MessageID: update.Message.ID,
	})
	if err != nil {
		h.logger.Debug("Failed to delete message",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard models.ReplyMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
