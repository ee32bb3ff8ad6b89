package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/repository"
	"go.uber.org/zap"
)

type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	logger       *zap.Logger
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ParseLessonLines разбивает текст сообщения на названия уроков.
// Пустые строки пропускаются, остальные обрезаются по краям.
func ParseLessonLines(text string) []string {
	lines := strings.Split(text, "\n")

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}

	return names
}

// GetDayLessons получает уроки класса на день недели.
// Возвращает nil если расписания на этот день ещё нет.
func (s *ScheduleService) GetDayLessons(ctx context.Context, classID int64, dayOfWeek int) ([]*model.Lesson, error) {
	schedule, err := s.scheduleRepo.GetActiveByClassID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	day, err := s.scheduleRepo.GetDay(ctx, schedule.ID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, nil
	}

	return s.scheduleRepo.GetLessonsByDayID(ctx, day.ID)
}

// EnsureDayLessons получает уроки класса на день недели, создавая
// активное расписание и день при отсутствии. Используется при входе
// в редактирование: день существует до того, как учитель пришлёт список.
func (s *ScheduleService) EnsureDayLessons(ctx context.Context, classID int64, dayOfWeek int) ([]*model.Lesson, error) {
	schedule, err := s.ensureActiveSchedule(ctx, classID)
	if err != nil {
		return nil, err
	}

	day, err := s.scheduleRepo.EnsureDay(ctx, schedule.ID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetLessonsByDayID(ctx, day.ID)
}

// ReplaceDayLessons заменяет уроки класса на день недели.
// Активное расписание и день создаются при отсутствии.
func (s *ScheduleService) ReplaceDayLessons(ctx context.Context, classID int64, dayOfWeek int, subjectNames []string) ([]*model.Lesson, error) {
	schedule, err := s.ensureActiveSchedule(ctx, classID)
	if err != nil {
		return nil, err
	}

	day, err := s.scheduleRepo.EnsureDay(ctx, schedule.ID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	lessons, err := s.scheduleRepo.ReplaceLessons(ctx, day.ID, subjectNames)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Day lessons replaced",
		zap.Int64("class_id", classID),
		zap.Int("day_of_week", dayOfWeek),
		zap.Int("lessons", len(lessons)),
	)

	return lessons, nil
}

// GetWeekLessons получает уроки класса на все отображаемые дни недели.
// Индекс результата - день недели (0 - понедельник).
func (s *ScheduleService) GetWeekLessons(ctx context.Context, classID int64) ([][]*model.Lesson, error) {
	week := make([][]*model.Lesson, model.WeekdaysShown)

	schedule, err := s.scheduleRepo.GetActiveByClassID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return week, nil
	}

	for dayOfWeek := range week {
		day, err := s.scheduleRepo.GetDay(ctx, schedule.ID, dayOfWeek)
		if err != nil {
			return nil, err
		}
		if day == nil {
			continue
		}

		lessons, err := s.scheduleRepo.GetLessonsByDayID(ctx, day.ID)
		if err != nil {
			return nil, err
		}
		week[dayOfWeek] = lessons
	}

	return week, nil
}

func (s *ScheduleService) ensureActiveSchedule(ctx context.Context, classID int64) (*model.ClassSchedule, error) {
	schedule, err := s.scheduleRepo.GetActiveByClassID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if schedule != nil {
		return schedule, nil
	}

	schedule = &model.ClassSchedule{
		SchoolClassID: classID,
		Name:          "Основное расписание",
		IsActive:      true,
	}
	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("ensure active schedule: %w", err)
	}

	return schedule, nil
}
