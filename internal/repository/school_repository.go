package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myschedule/class_schedule_bot/internal/model"
)

type SchoolRepository struct {
	pool *pgxpool.Pool
}

func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

// GetOrCreate возвращает школу по имени, создавая её при первом запуске
func (r *SchoolRepository) GetOrCreate(ctx context.Context, name string) (*model.School, error) {
	query := `
		INSERT INTO schools (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`

	var school model.School
	err := r.pool.QueryRow(ctx, query, name).Scan(&school.ID, &school.Name)
	if err != nil {
		return nil, fmt.Errorf("get or create school: %w", err)
	}

	return &school, nil
}
