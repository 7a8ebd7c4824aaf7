package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

func (r *Repository) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, website, monthly_price, features, pros, cons,
			support_type, diet_type, exercise_requirement, time_commitment, best_for, not_suitable_for
		FROM programs
		ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var items []domain.Program
	for rows.Next() {
		var (
			p                           domain.Program
			supportType, dietType       []string
			bestFor, notSuitableFor     []string
			exerciseReq, timeCommitment string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Website, &p.MonthlyPrice,
			&p.Features, &p.Pros, &p.Cons,
			&supportType, &dietType, &exerciseReq, &timeCommitment, &bestFor, &notSuitableFor)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		p.SupportType = domain.Tags(supportType)
		p.DietType = domain.Tags(dietType)
		p.ExerciseRequirement = domain.ExerciseLevel(exerciseReq)
		p.TimeCommitment = domain.TimeCommitment(timeCommitment)
		p.BestFor = domain.Tags(bestFor)
		p.NotSuitableFor = domain.Tags(notSuitableFor)
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over programs: %w", err)
	}
	return items, nil
}
