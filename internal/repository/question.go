package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/goccy/go-json"
)

func (r *Repository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text, type, options, min, max, step,
			COALESCE(min_label, ''), COALESCE(max_label, ''), COALESCE(placeholder, '')
		FROM questions
		ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var items []domain.Question
	for rows.Next() {
		var (
			q       domain.Question
			qType   string
			options []byte
		)
		err := rows.Scan(&q.ID, &q.Text, &qType, &options, &q.Min, &q.Max, &q.Step,
			&q.MinLabel, &q.MaxLabel, &q.Placeholder)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = domain.QuestionType(qType)
		if len(options) > 0 {
			if err := json.Unmarshal(options, &q.Options); err != nil {
				return nil, fmt.Errorf("decode options for question %s: %w", q.ID, err)
			}
		}
		items = append(items, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over questions: %w", err)
	}
	return items, nil
}
