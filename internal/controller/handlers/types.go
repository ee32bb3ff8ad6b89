package handlers

import (
	"context"

	"github.com/myschedule/class_schedule_bot/internal/controller/state"
	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/service"
	"go.uber.org/zap"
)

// Поверхности сервисов, которые нужны обработчикам.
// Конкретные типы из internal/service им удовлетворяют.

type UserService interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	RegisterPupil(ctx context.Context, telegramID int64, fullName string, class *model.SchoolClass) (*model.User, error)
	RegisterTeacher(ctx context.Context, telegramID int64, fullName string, schoolID int64) (*model.User, error)
}

type ClassService interface {
	School() *model.School
	CreateClass(ctx context.Context, grade int, letter string) (*model.SchoolClass, error)
	GetByInviteCode(ctx context.Context, code string) (*model.SchoolClass, error)
	GetByGradeAndLetter(ctx context.Context, grade int, letter string) (*model.SchoolClass, error)
	ListGrades(ctx context.Context) ([]int, error)
}

type ScheduleService interface {
	ReplaceDayLessons(ctx context.Context, classID int64, dayOfWeek int, subjectNames []string) ([]*model.Lesson, error)
}

type Notifier interface {
	ScheduleUpdated(ctx context.Context, sender service.MessageSender, class *model.SchoolClass, dayOfWeek int, text string)
}

// Handlers содержит все зависимости для обработки команд и текстовых
// сообщений. Глобальных синглтонов нет: всё, что нужно обработчику,
// приходит отсюда или аргументами.
type Handlers struct {
	userService     UserService
	classService    ClassService
	scheduleService ScheduleService
	notifier        Notifier
	stateManager    *state.Manager
	rootAdminID     int64
	botUsername     string
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService UserService,
	classService ClassService,
	scheduleService ScheduleService,
	notifier Notifier,
	stateManager *state.Manager,
	rootAdminID int64,
	botUsername string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:     userService,
		classService:    classService,
		scheduleService: scheduleService,
		notifier:        notifier,
		stateManager:    stateManager,
		rootAdminID:     rootAdminID,
		botUsername:     botUsername,
		logger:          logger,
	}
}
