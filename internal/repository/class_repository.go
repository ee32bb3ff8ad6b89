package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myschedule/class_schedule_bot/internal/model"
)

type ClassRepository struct {
	pool *pgxpool.Pool
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// Create создаёт новый класс
func (r *ClassRepository) Create(ctx context.Context, class *model.SchoolClass) error {
	query := `
		INSERT INTO school_classes (school_id, grade, letter, invite_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		class.SchoolID,
		class.Grade,
		class.Letter,
		class.InviteCode,
	).Scan(&class.ID, &class.CreatedAt)

	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

// GetByID получает класс по идентификатору
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.SchoolClass, error) {
	query := `
		SELECT id, school_id, grade, letter, invite_code, created_at
		FROM school_classes
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get class by id")
}

// GetByInviteCode получает класс по пригласительному коду
func (r *ClassRepository) GetByInviteCode(ctx context.Context, code string) (*model.SchoolClass, error) {
	query := `
		SELECT id, school_id, grade, letter, invite_code, created_at
		FROM school_classes
		WHERE invite_code = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, code), "get class by invite code")
}

// GetByGradeAndLetter получает класс по цифре и букве
func (r *ClassRepository) GetByGradeAndLetter(ctx context.Context, schoolID int64, grade int, letter string) (*model.SchoolClass, error) {
	query := `
		SELECT id, school_id, grade, letter, invite_code, created_at
		FROM school_classes
		WHERE school_id = $1 AND grade = $2 AND letter = $3
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, schoolID, grade, letter), "get class by grade and letter")
}

// ListGrades получает список параллелей школы по убыванию
func (r *ClassRepository) ListGrades(ctx context.Context, schoolID int64) ([]int, error) {
	query := `
		SELECT DISTINCT grade
		FROM school_classes
		WHERE school_id = $1
		ORDER BY grade DESC
	`

	rows, err := r.pool.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	defer rows.Close()

	var grades []int
	for rows.Next() {
		var grade int
		if err := rows.Scan(&grade); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grades: %w", err)
	}

	return grades, nil
}

// ListLettersByGrade получает буквы классов параллели,
// отсортированные по алфавиту без учёта регистра
func (r *ClassRepository) ListLettersByGrade(ctx context.Context, schoolID int64, grade int) ([]string, error) {
	query := `
		SELECT DISTINCT letter
		FROM school_classes
		WHERE school_id = $1 AND grade = $2
		ORDER BY lower(letter)
	`

	rows, err := r.pool.Query(ctx, query, schoolID, grade)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	defer rows.Close()

	var letters []string
	for rows.Next() {
		var letter string
		if err := rows.Scan(&letter); err != nil {
			return nil, fmt.Errorf("scan letter: %w", err)
		}
		letters = append(letters, strings.TrimSpace(letter))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate letters: %w", err)
	}

	return letters, nil
}

func (r *ClassRepository) scanOne(row pgx.Row, op string) (*model.SchoolClass, error) {
	var class model.SchoolClass
	err := row.Scan(
		&class.ID,
		&class.SchoolID,
		&class.Grade,
		&class.Letter,
		&class.InviteCode,
		&class.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Класс не найден
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// invite_code хранится как CHAR(32), но на всякий случай
	class.InviteCode = strings.TrimSpace(class.InviteCode)
	class.Letter = strings.TrimSpace(class.Letter)

	return &class, nil
}
