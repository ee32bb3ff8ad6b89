package service

import (
	"context"
	"fmt"

	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/repository"
	"go.uber.org/zap"
)

type ClassService struct {
	classRepo    *repository.ClassRepository
	scheduleRepo *repository.ScheduleRepository
	school       *model.School
	logger       *zap.Logger
}

// NewClassService создаёт сервис классов. Школа одна на процесс,
// разрешается при старте.
func NewClassService(
	classRepo *repository.ClassRepository,
	scheduleRepo *repository.ScheduleRepository,
	school *model.School,
	logger *zap.Logger,
) *ClassService {
	return &ClassService{
		classRepo:    classRepo,
		scheduleRepo: scheduleRepo,
		school:       school,
		logger:       logger,
	}
}

// School возвращает школу процесса
func (s *ClassService) School() *model.School {
	return s.school
}

// CreateClass создаёт класс со свежим пригласительным кодом
// и активным расписанием по умолчанию
func (s *ClassService) CreateClass(ctx context.Context, grade int, letter string) (*model.SchoolClass, error) {
	code, err := model.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	class := &model.SchoolClass{
		SchoolID:   s.school.ID,
		Grade:      grade,
		Letter:     letter,
		InviteCode: code,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	schedule := &model.ClassSchedule{
		SchoolClassID: class.ID,
		Name:          "Основное расписание",
		IsActive:      true,
	}
	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	s.logger.Info("Class created",
		zap.Int64("class_id", class.ID),
		zap.Int("grade", grade),
		zap.String("letter", letter),
	)

	return class, nil
}

// GetByID получает класс по идентификатору.
// Возвращает (nil, nil) если класса нет.
func (s *ClassService) GetByID(ctx context.Context, id int64) (*model.SchoolClass, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetByInviteCode получает класс по пригласительному коду.
// Возвращает (nil, nil) если код никуда не ведёт.
func (s *ClassService) GetByInviteCode(ctx context.Context, code string) (*model.SchoolClass, error) {
	if len(code) != model.InviteCodeLength {
		return nil, nil
	}
	return s.classRepo.GetByInviteCode(ctx, code)
}

// GetByGradeAndLetter получает класс по цифре и букве
func (s *ClassService) GetByGradeAndLetter(ctx context.Context, grade int, letter string) (*model.SchoolClass, error) {
	return s.classRepo.GetByGradeAndLetter(ctx, s.school.ID, grade, letter)
}

// ListGrades получает параллели школы по убыванию
func (s *ClassService) ListGrades(ctx context.Context) ([]int, error) {
	return s.classRepo.ListGrades(ctx, s.school.ID)
}

// ListLettersByGrade получает буквы классов параллели
func (s *ClassService) ListLettersByGrade(ctx context.Context, grade int) ([]string, error) {
	return s.classRepo.ListLettersByGrade(ctx, s.school.ID, grade)
}
