package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myschedule/class_schedule_bot/internal/model"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создаёт нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (role, school_id, school_class_id, telegram_id, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.Role,
		user.SchoolID,
		user.SchoolClassID,
		user.TelegramID,
		user.FullName,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `
		SELECT id, role, school_id, school_class_id, telegram_id, full_name, created_at
		FROM users
		WHERE telegram_id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.Role,
		&user.SchoolID,
		&user.SchoolClassID,
		&user.TelegramID,
		&user.FullName,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return &user, nil
}

// GetPupilsByClassID получает всех учеников класса
func (r *UserRepository) GetPupilsByClassID(ctx context.Context, classID int64) ([]*model.User, error) {
	query := `
		SELECT id, role, school_id, school_class_id, telegram_id, full_name, created_at
		FROM users
		WHERE school_class_id = $1 AND role = 'student'
		ORDER BY full_name
	`

	rows, err := r.pool.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("get pupils by class id: %w", err)
	}
	defer rows.Close()

	var pupils []*model.User
	for rows.Next() {
		var pupil model.User
		err := rows.Scan(
			&pupil.ID,
			&pupil.Role,
			&pupil.SchoolID,
			&pupil.SchoolClassID,
			&pupil.TelegramID,
			&pupil.FullName,
			&pupil.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pupil: %w", err)
		}
		pupils = append(pupils, &pupil)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pupils: %w", err)
	}

	return pupils, nil
}
