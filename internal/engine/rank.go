package engine

import (
	"sort"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

// Recommend scores every program, sorts by score descending and splits the
// result at Threshold. Equal scores keep catalog order. Both lists are
// returned in full and are never nil.
func Recommend(answers domain.AnswerSet, programs []domain.Program) domain.Recommendations {
	scored := make([]domain.ScoredProgram, 0, len(programs))
	for _, p := range programs {
		scored = append(scored, domain.ScoredProgram{
			Program: p,
			Score:   Score(answers, p),
			Reasons: Reasons(answers, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	recs := domain.Recommendations{
		Recommended:    []domain.ScoredProgram{},
		NotRecommended: []domain.ScoredProgram{},
	}
	for _, sp := range scored {
		if sp.Score >= Threshold {
			recs.Recommended = append(recs.Recommended, sp)
		} else {
			recs.NotRecommended = append(recs.NotRecommended, sp)
		}
	}
	return recs
}
