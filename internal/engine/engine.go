// Package engine scores programs against a questionnaire answer set and
// ranks them into recommended and not recommended lists.
//
// Everything here is a pure function of its inputs: no I/O, no shared state,
// no randomness. Missing or mistyped answers skip the criterion they drive.
package engine

import (
	"math"
	"slices"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

const (
	// Threshold is the lowest score that counts as a recommendation.
	Threshold = 60.0
	// NeutralScore is returned when no criterion could be evaluated.
	NeutralScore = 50.0
)

// Point budgets per criterion. Each applicable criterion adds its budget to
// the possible total; earned points may be negative.
const (
	goalPoints     = 30.0
	supportPoints  = 20.0
	budgetPoints   = 25.0
	timePoints     = 15.0
	dietPoints     = 15.0
	historyPoints  = 15.0
	exercisePoints = 10.0

	goalPenalty             = 15.0
	supportPenalty          = 10.0
	budgetMaxPenalty        = 15.0
	timePenalty             = 10.0
	dietNoPreferencePoints  = 10.0
	historyFailurePenalty   = 25.0
	exerciseAvoidPenalty    = 10.0
	exerciseMismatchPenalty = 5.0
)

// criterion returns the points earned and the points possible, and whether
// the answers needed to evaluate it were present.
type criterion func(answers domain.AnswerSet, p domain.Program) (earned, possible float64, ok bool)

var criteria = []criterion{
	goalCriterion,
	supportCriterion,
	budgetCriterion,
	timeCriterion,
	dietCriterion,
	historyCriterion,
	exerciseCriterion,
}

type tally struct {
	score    float64
	possible float64
}

func evaluate(answers domain.AnswerSet, p domain.Program) tally {
	var t tally
	for _, c := range criteria {
		earned, possible, ok := c(answers, p)
		if !ok {
			continue
		}
		t.score += earned
		t.possible += possible
	}
	return t
}

func (t tally) normalize() float64 {
	if t.possible <= 0 {
		return NeutralScore
	}
	return math.Max(0, math.Min(100, t.score/t.possible*100))
}

// Score computes the 0-100 compatibility of p with answers.
func Score(answers domain.AnswerSet, p domain.Program) float64 {
	return evaluate(answers, p).normalize()
}

func goalCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	goal, ok := answers.Text(domain.QuestionGoal)
	if !ok {
		return 0, 0, false
	}
	switch {
	case p.BestFor.Has(goal):
		return goalPoints, goalPoints, true
	case p.NotSuitableFor.Has(goal):
		return -goalPenalty, goalPoints, true
	}
	return 0, goalPoints, true
}

func supportCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	pref, ok := answers.Text(domain.QuestionSupportPreference)
	if !ok {
		return 0, 0, false
	}
	if p.SupportType.Has(pref) {
		return supportPoints, supportPoints, true
	}
	wantsPeople := pref == domain.SupportGroup || pref == domain.SupportOneOnOne
	if wantsPeople && p.SupportType.Has(domain.SupportIndependent) {
		return -supportPenalty, supportPoints, true
	}
	return 0, supportPoints, true
}

// budgetCriterion rewards using more of the stated budget, not spending less.
func budgetCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	budget, ok := answers.Number(domain.QuestionBudget)
	if !ok {
		return 0, 0, false
	}
	denom := math.Max(budget, 1)
	if p.MonthlyPrice <= budget {
		return budgetPoints * (p.MonthlyPrice / denom), budgetPoints, true
	}
	over := (p.MonthlyPrice - budget) / denom
	return -math.Min(budgetMaxPenalty, budgetMaxPenalty*over), budgetPoints, true
}

func timeCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	available, ok := answers.Text(domain.QuestionTimeCommitment)
	if !ok {
		return 0, 0, false
	}
	if string(p.TimeCommitment) == available {
		return timePoints, timePoints, true
	}
	if needsMoreTime(available, p) {
		return -timePenalty, timePoints, true
	}
	return 0, timePoints, true
}

func needsMoreTime(available string, p domain.Program) bool {
	return available == string(domain.TimeMinimal) &&
		(p.TimeCommitment == domain.TimeModerate || p.TimeCommitment == domain.TimeSignificant)
}

func dietCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	prefs, ok := answers.List(domain.QuestionDietPreference)
	if !ok {
		return 0, 0, false
	}
	if dietMatches(prefs, p) {
		return dietPoints, dietPoints, true
	}
	if slices.Contains(prefs, domain.DietNoPreference) {
		return dietNoPreferencePoints, dietPoints, true
	}
	return 0, dietPoints, true
}

// dietMatches holds when any preference is in the program's diet types, or
// the program is flexible and there is at least one preference.
func dietMatches(prefs []string, p domain.Program) bool {
	for _, pref := range prefs {
		if p.DietType.Has(pref) || p.DietType.Has(domain.DietFlexible) {
			return true
		}
	}
	return false
}

func historyCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	experience, ok := answers.Text(domain.QuestionPastExperience)
	if !ok {
		return 0, 0, false
	}
	tried, ok := answers.List(domain.QuestionPreviousPrograms)
	if !ok {
		return 0, 0, false
	}
	if !slices.Contains(tried, p.ID) {
		return 0, historyPoints, true
	}
	switch experience {
	case domain.ExperienceSuccess:
		return historyPoints, historyPoints, true
	case domain.ExperienceFailure:
		return -historyFailurePenalty, historyPoints, true
	}
	return 0, historyPoints, true
}

func exerciseCriterion(answers domain.AnswerSet, p domain.Program) (float64, float64, bool) {
	liked, ok := answers.List(domain.QuestionExercisePreference)
	if !ok {
		return 0, 0, false
	}
	if slices.Contains(liked, domain.ExerciseNone) && p.ExerciseRequirement == domain.ExerciseHigh {
		return -exerciseAvoidPenalty, exercisePoints, true
	}
	if len(liked) == 0 || liked[0] == domain.ExerciseNone {
		return 0, exercisePoints, true
	}

	var earned float64
	if p.ExerciseRequirement == domain.ExerciseLow && slices.Contains(liked, domain.ExerciseStrength) {
		earned -= exerciseMismatchPenalty
	}
	if p.ExerciseRequirement == domain.ExerciseHigh &&
		(slices.Contains(liked, domain.ExerciseStrength) || slices.Contains(liked, domain.ExerciseCardio)) {
		earned += exercisePoints
	}
	return earned, exercisePoints, true
}
