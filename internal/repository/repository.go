package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Load reads the full catalog: questions and programs in display order.
func (r *Repository) Load(ctx context.Context) ([]domain.Question, []domain.Program, error) {
	questions, err := r.ListQuestions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}
	programs, err := r.ListPrograms(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load programs: %w", err)
	}
	return questions, programs, nil
}

// Count programs, used to decide whether seeding is needed
func (r *Repository) CountPrograms(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM programs`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count programs: %w", err)
	}
	return total, nil
}
