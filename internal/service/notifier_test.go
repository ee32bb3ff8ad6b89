package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePupilSource struct {
	pupils []*model.User
	err    error
}

func (f *fakePupilSource) GetPupilsByClassID(ctx context.Context, classID int64) ([]*model.User, error) {
	return f.pupils, f.err
}

type fakeSender struct {
	sent    []int64
	failFor map[int64]bool
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	chatID := params.ChatID.(int64)
	if f.failFor[chatID] {
		return nil, errors.New("forbidden: bot was blocked by the user")
	}
	f.sent = append(f.sent, chatID)
	return &models.Message{}, nil
}

func TestScheduleUpdatedFanOut(t *testing.T) {
	source := &fakePupilSource{pupils: []*model.User{
		{ID: 1, TelegramID: 100},
		{ID: 2, TelegramID: 200},
		{ID: 3, TelegramID: 300},
	}}
	sender := &fakeSender{}

	n := NewNotifier(source, zap.NewNop())
	n.ScheduleUpdated(context.Background(), sender, &model.SchoolClass{ID: 7}, model.Monday, "расписание")

	assert.Equal(t, []int64{100, 200, 300}, sender.sent)
}

func TestScheduleUpdatedContinuesAfterFailure(t *testing.T) {
	source := &fakePupilSource{pupils: []*model.User{
		{ID: 1, TelegramID: 100},
		{ID: 2, TelegramID: 200},
		{ID: 3, TelegramID: 300},
	}}
	sender := &fakeSender{failFor: map[int64]bool{200: true}}

	n := NewNotifier(source, zap.NewNop())
	n.ScheduleUpdated(context.Background(), sender, &model.SchoolClass{ID: 7}, model.Friday, "расписание")

	// Заблокировавший бота ученик не прерывает рассылку остальным
	assert.Equal(t, []int64{100, 300}, sender.sent)
}

func TestScheduleUpdatedNoPupils(t *testing.T) {
	sender := &fakeSender{}

	n := NewNotifier(&fakePupilSource{}, zap.NewNop())
	n.ScheduleUpdated(context.Background(), sender, &model.SchoolClass{ID: 7}, model.Monday, "расписание")

	assert.Empty(t, sender.sent)
}

func TestScheduleUpdatedSourceError(t *testing.T) {
	sender := &fakeSender{}

	n := NewNotifier(&fakePupilSource{err: errors.New("connection refused")}, zap.NewNop())
	n.ScheduleUpdated(context.Background(), sender, &model.SchoolClass{ID: 7}, model.Monday, "расписание")

	assert.Empty(t, sender.sent)
}
