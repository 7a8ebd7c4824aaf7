package seeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Setup replaces the catalog tables' contents with the default questions and
// programs in one transaction.
func Setup(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		log.Info("seed: truncating catalog tables")
		if _, err := tx.Exec(ctx, `TRUNCATE questions, programs`); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		questions := Questions()
		log.Info("seed: inserting questions", zap.Int("count", len(questions)))
		if err := seedQuestions(ctx, tx); err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}

		programs := Programs()
		log.Info("seed: inserting programs", zap.Int("count", len(programs)))
		if err := seedPrograms(ctx, tx); err != nil {
			return fmt.Errorf("seed programs: %w", err)
		}

		log.Info("seed: complete")
		return nil
	})
}

func seedQuestions(ctx context.Context, tx pgx.Tx) error {
	rows := []string{}
	args := []any{}

	for i, q := range Questions() {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options for %s: %w", q.ID, err)
		}

		rows = append(rows, placeholders(len(args), 11))
		args = append(args, q.ID, i, q.Text, string(q.Type), string(options),
			q.Min, q.Max, q.Step, nullable(q.MinLabel), nullable(q.MaxLabel), nullable(q.Placeholder))
	}

	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO questions
		(id, position, text, type, options, min, max, step, min_label, max_label, placeholder)
		VALUES ` + strings.Join(rows, ", ")

	_, err := tx.Exec(ctx, query, args...)
	return err
}

func seedPrograms(ctx context.Context, tx pgx.Tx) error {
	rows := []string{}
	args := []any{}

	for i, p := range Programs() {
		rows = append(rows, placeholders(len(args), 15))
		args = append(args, p.ID, i, p.Name, p.Description, p.Website, p.MonthlyPrice,
			nonNil(p.Features), nonNil(p.Pros), nonNil(p.Cons),
			nonNil(p.SupportType), nonNil(p.DietType),
			string(p.ExerciseRequirement), string(p.TimeCommitment),
			nonNil(p.BestFor), nonNil(p.NotSuitableFor))
	}

	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO programs
		(id, position, name, description, website, monthly_price, features, pros, cons,
		 support_type, diet_type, exercise_requirement, time_commitment, best_for, not_suitable_for)
		VALUES ` + strings.Join(rows, ", ")

	_, err := tx.Exec(ctx, query, args...)
	return err
}

// placeholders renders "($base+1, ..., $base+n)".
func placeholders(base, n int) string {
	parts := make([]string, n)
	for i := range n {
		parts[i] = fmt.Sprintf("$%d", base+i+1)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil[S ~[]string](s S) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
