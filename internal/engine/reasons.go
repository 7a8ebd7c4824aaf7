package engine

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

var goalPhrases = map[string]string{
	domain.GoalQuick:       "losing weight quickly",
	domain.GoalGradual:     "losing weight gradually",
	domain.GoalSustainable: "developing sustainable habits",
	domain.GoalMuscle:      "building muscle while losing fat",
}

var supportPhrases = map[string]string{
	domain.SupportGroup:       "group support",
	domain.SupportOneOnOne:    "one-on-one coaching",
	domain.SupportIndependent: "independent approach",
	domain.SupportMix:         "mix of support and independence",
}

func phrase(table map[string]string, tag string) string {
	if text, ok := table[tag]; ok {
		return text
	}
	return tag
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Reasons explains the match between answers and p. The strings are
// informational and play no part in the score.
func Reasons(answers domain.AnswerSet, p domain.Program) []string {
	reasons := []string{}

	if goal, ok := answers.Text(domain.QuestionGoal); ok && p.BestFor.Has(goal) {
		reasons = append(reasons, "Aligns with your goal of "+phrase(goalPhrases, goal))
	}

	if pref, ok := answers.Text(domain.QuestionSupportPreference); ok && p.SupportType.Has(pref) {
		reasons = append(reasons, fmt.Sprintf("Offers the %s that you prefer", phrase(supportPhrases, pref)))
	}

	if budget, ok := answers.Number(domain.QuestionBudget); ok {
		if p.MonthlyPrice <= budget {
			reasons = append(reasons, fmt.Sprintf("Fits within your budget of $%s per month", formatAmount(budget)))
		} else {
			reasons = append(reasons, fmt.Sprintf("Exceeds your budget of $%s per month", formatAmount(budget)))
		}
	}

	if available, ok := answers.Text(domain.QuestionTimeCommitment); ok {
		if string(p.TimeCommitment) == available {
			reasons = append(reasons, "Matches your available time commitment")
		} else if needsMoreTime(available, p) {
			reasons = append(reasons, "May require more time than you currently have available")
		}
	}

	experience, _ := answers.Text(domain.QuestionPastExperience)
	tried, _ := answers.List(domain.QuestionPreviousPrograms)
	if experience == domain.ExperienceFailure && slices.Contains(tried, p.ID) {
		reasons = append(reasons, "You've tried this program before without success")
	}

	if prefs, ok := answers.List(domain.QuestionDietPreference); ok && !slices.Contains(prefs, domain.DietNoPreference) {
		if dietMatches(prefs, p) {
			reasons = append(reasons, "Compatible with your dietary preferences")
		} else {
			reasons = append(reasons, "May not fully accommodate your dietary preferences")
		}
	}

	return reasons
}
