package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myschedule/class_schedule_bot/internal/model"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// GetActiveByClassID получает активное расписание класса
func (r *ScheduleRepository) GetActiveByClassID(ctx context.Context, classID int64) (*model.ClassSchedule, error) {
	query := `
		SELECT id, school_class_id, name, is_active, created_at, updated_at
		FROM class_schedules
		WHERE school_class_id = $1 AND is_active = true
		ORDER BY id
		LIMIT 1
	`

	var schedule model.ClassSchedule
	err := r.pool.QueryRow(ctx, query, classID).Scan(
		&schedule.ID,
		&schedule.SchoolClassID,
		&schedule.Name,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Активного расписания ещё нет
		}
		return nil, fmt.Errorf("get active schedule: %w", err)
	}

	return &schedule, nil
}

// CreateSchedule создаёт расписание класса
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *model.ClassSchedule) error {
	query := `
		INSERT INTO class_schedules (school_class_id, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		schedule.SchoolClassID,
		schedule.Name,
		schedule.IsActive,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	return nil
}

// GetDay получает день расписания по номеру дня недели
func (r *ScheduleRepository) GetDay(ctx context.Context, scheduleID int64, dayOfWeek int) (*model.ScheduleDay, error) {
	query := `
		SELECT id, schedule_id, day_of_week
		FROM schedule_days
		WHERE schedule_id = $1 AND day_of_week = $2
	`

	var day model.ScheduleDay
	err := r.pool.QueryRow(ctx, query, scheduleID, dayOfWeek).Scan(
		&day.ID,
		&day.ScheduleID,
		&day.DayOfWeek,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // День ещё не создан
		}
		return nil, fmt.Errorf("get schedule day: %w", err)
	}

	return &day, nil
}

// EnsureDay получает день расписания, создавая его при отсутствии
func (r *ScheduleRepository) EnsureDay(ctx context.Context, scheduleID int64, dayOfWeek int) (*model.ScheduleDay, error) {
	query := `
		INSERT INTO schedule_days (schedule_id, day_of_week)
		VALUES ($1, $2)
		ON CONFLICT (schedule_id, day_of_week) DO UPDATE SET day_of_week = EXCLUDED.day_of_week
		RETURNING id, schedule_id, day_of_week
	`

	var day model.ScheduleDay
	err := r.pool.QueryRow(ctx, query, scheduleID, dayOfWeek).Scan(
		&day.ID,
		&day.ScheduleID,
		&day.DayOfWeek,
	)

	if err != nil {
		return nil, fmt.Errorf("ensure schedule day: %w", err)
	}

	return &day, nil
}

// GetLessonsByDayID получает уроки дня в порядке следования
func (r *ScheduleRepository) GetLessonsByDayID(ctx context.Context, dayID int64) ([]*model.Lesson, error) {
	query := `
		SELECT id, day_id, subject_name, start_time, end_time, lesson_order
		FROM lessons
		WHERE day_id = $1
		ORDER BY lesson_order, start_time
	`

	rows, err := r.pool.Query(ctx, query, dayID)
	if err != nil {
		return nil, fmt.Errorf("get lessons: %w", err)
	}
	defer rows.Close()

	// Непустой слайс даже без уроков: "день есть, но пустой" и
	// "дня ещё нет" различаются на уровне сервиса
	lessons := make([]*model.Lesson, 0)
	for rows.Next() {
		var lesson model.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.DayID,
			&lesson.SubjectName,
			&lesson.StartTime,
			&lesson.EndTime,
			&lesson.Order,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}

	return lessons, nil
}

// ReplaceLessons атомарно заменяет все уроки дня на новый список.
// Порядок уроков - 1..N по порядку названий в subjectNames.
func (r *ScheduleRepository) ReplaceLessons(ctx context.Context, dayID int64, subjectNames []string) ([]*model.Lesson, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace lessons: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM lessons WHERE day_id = $1`, dayID)
	if err != nil {
		return nil, fmt.Errorf("delete lessons: %w", err)
	}

	insert := `
		INSERT INTO lessons (day_id, subject_name, lesson_order)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	lessons := make([]*model.Lesson, 0, len(subjectNames))
	for i, name := range subjectNames {
		lesson := &model.Lesson{
			DayID:       dayID,
			SubjectName: name,
			Order:       i + 1,
		}
		if err := tx.QueryRow(ctx, insert, dayID, name, lesson.Order).Scan(&lesson.ID); err != nil {
			return nil, fmt.Errorf("insert lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	_, err = tx.Exec(ctx, `
		UPDATE class_schedules SET updated_at = now()
		WHERE id = (SELECT schedule_id FROM schedule_days WHERE id = $1)
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("touch schedule: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit replace lessons: %w", err)
	}

	return lessons, nil
}
