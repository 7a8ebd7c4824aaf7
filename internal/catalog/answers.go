package catalog

import (
	"fmt"
	"strconv"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

// CheckAnswers reports answers that don't fit the question list. The issues
// are informational; scoring ignores whatever it can't use.
func (s *Snapshot) CheckAnswers(answers domain.AnswerSet) []domain.AnswerIssue {
	var issues []domain.AnswerIssue
	add := func(id, format string, args ...any) {
		issues = append(issues, domain.AnswerIssue{QuestionID: id, Message: fmt.Sprintf(format, args...)})
	}

	for _, id := range answers.Keys() {
		answer := answers[id]
		q, ok := s.Question(id)
		if !ok {
			add(id, "unknown question")
			continue
		}
		if want := q.ExpectedKind(); answer.Kind() != want {
			add(id, "expected %s answer, got %s", want, answer.Kind())
			continue
		}

		switch q.Type {
		case domain.QuestionSingleChoice:
			v, _ := answer.Text()
			if !q.HasOption(v) {
				add(id, "%q is not an option", v)
			}
		case domain.QuestionMultiChoice:
			values, _ := answer.List()
			for _, v := range values {
				if !q.HasOption(v) {
					add(id, "%q is not an option", v)
				}
			}
		case domain.QuestionSlider:
			v, _ := answer.Number()
			if v < *q.Min || v > *q.Max {
				add(id, "%s is outside %s..%s", formatNumber(v), formatNumber(*q.Min), formatNumber(*q.Max))
			}
		}
	}
	return issues
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
