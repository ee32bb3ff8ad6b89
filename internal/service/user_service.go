package service

import (
	"context"
	"fmt"

	"github.com/myschedule/class_schedule_bot/internal/model"
	"github.com/myschedule/class_schedule_bot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// RegisterPupil создаёт ученика, привязанного к классу
func (s *UserService) RegisterPupil(ctx context.Context, telegramID int64, fullName string, class *model.SchoolClass) (*model.User, error) {
	user := &model.User{
		Role:          model.RoleStudent,
		SchoolID:      &class.SchoolID,
		SchoolClassID: &class.ID,
		TelegramID:    telegramID,
		FullName:      fullName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register pupil: %w", err)
	}

	s.logger.Info("New pupil registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.Int64("class_id", class.ID),
	)

	return user, nil
}

// RegisterTeacher создаёт учителя. Вызывается только из команды
// root-администратора.
func (s *UserService) RegisterTeacher(ctx context.Context, telegramID int64, fullName string, schoolID int64) (*model.User, error) {
	user := &model.User{
		Role:       model.RoleTeacher,
		SchoolID:   &schoolID,
		TelegramID: telegramID,
		FullName:   fullName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register teacher: %w", err)
	}

	s.logger.Info("New teacher registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
	)

	return user, nil
}

// GetClassPupils получает учеников класса
func (s *UserService) GetClassPupils(ctx context.Context, classID int64) ([]*model.User, error) {
	return s.userRepo.GetPupilsByClassID(ctx, classID)
}
