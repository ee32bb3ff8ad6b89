package service

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"go.uber.org/zap"
)

// MessageSender минимальная поверхность шлюза, нужная для рассылки.
// *bot.Bot ей удовлетворяет.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// PupilSource выдаёт текущий состав класса.
// *repository.UserRepository ей удовлетворяет.
type PupilSource interface {
	GetPupilsByClassID(ctx context.Context, classID int64) ([]*model.User, error)
}

// Notifier рассылает ученикам класса уведомления об изменении расписания
type Notifier struct {
	userRepo PupilSource
	logger   *zap.Logger
}

func NewNotifier(userRepo PupilSource, logger *zap.Logger) *Notifier {
	return &Notifier{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ScheduleUpdated отправляет каждому текущему ученику класса новое
// расписание дня. Рассылка best-effort: сбой доставки одному ученику
// не прерывает остальных и никогда не возвращается учителю.
func (n *Notifier) ScheduleUpdated(ctx context.Context, sender MessageSender, class *model.SchoolClass, dayOfWeek int, text string) {
	pupils, err := n.userRepo.GetPupilsByClassID(ctx, class.ID)
	if err != nil {
		n.logger.Error("Failed to load pupils for notification",
			zap.Int64("class_id", class.ID),
			zap.Error(err))
		return
	}

	delivered := 0
	for _, pupil := range pupils {
		_, err := sender.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    pupil.TelegramID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			// Чат мог быть удалён или бот заблокирован - идём дальше
			n.logger.Warn("Failed to deliver schedule update",
				zap.Int64("pupil_id", pupil.ID),
				zap.Int64("telegram_id", pupil.TelegramID),
				zap.Error(err))
			continue
		}
		delivered++
	}

	n.logger.Info("Schedule update fan-out finished",
		zap.Int64("class_id", class.ID),
		zap.Int("day_of_week", dayOfWeek),
		zap.Int("pupils", len(pupils)),
		zap.Int("delivered", delivered))
}
