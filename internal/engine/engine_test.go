package engine

import (
	"testing"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/seeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProgram(id string) domain.Program {
	return domain.Program{
		ID:                  id,
		Name:                id,
		MonthlyPrice:        0,
		SupportType:         domain.Tags{"independent"},
		DietType:            domain.Tags{"balanced"},
		ExerciseRequirement: domain.ExerciseLow,
		TimeCommitment:      domain.TimeMinimal,
		BestFor:             domain.Tags{"quick"},
		NotSuitableFor:      domain.Tags{"muscle"},
	}
}

func with(p domain.Program, mutate func(*domain.Program)) domain.Program {
	mutate(&p)
	return p
}

func TestEmptyAnswersScoreNeutral(t *testing.T) {
	for _, p := range seeds.Programs() {
		assert.Equal(t, NeutralScore, Score(domain.AnswerSet{}, p), p.ID)
		assert.Equal(t, NeutralScore, Score(nil, p), p.ID)
	}
}

func TestMistypedAnswersAreSkipped(t *testing.T) {
	answers := domain.AnswerSet{
		domain.QuestionGoal:               domain.NumberAnswer(3),
		domain.QuestionBudget:             domain.TextAnswer("100"),
		domain.QuestionDietPreference:     domain.TextAnswer("vegan"),
		domain.QuestionExercisePreference: domain.Answer{},
		domain.QuestionTimeCommitment:     domain.TextAnswer(""),
	}
	assert.Equal(t, NeutralScore, Score(answers, testProgram("p")))
}

func TestCriteria(t *testing.T) {
	base := testProgram("p")

	tests := []struct {
		name     string
		answers  domain.AnswerSet
		program  domain.Program
		earned   float64
		possible float64
	}{
		{"goal match", domain.AnswerSet{"goal": domain.TextAnswer("quick")}, base, 30, 30},
		{"goal not suitable", domain.AnswerSet{"goal": domain.TextAnswer("muscle")}, base, -15, 30},
		{"goal neutral", domain.AnswerSet{"goal": domain.TextAnswer("gradual")}, base, 0, 30},

		{"support match", domain.AnswerSet{"support-preference": domain.TextAnswer("independent")}, base, 20, 20},
		{"support group vs independent", domain.AnswerSet{"support-preference": domain.TextAnswer("group")}, base, -10, 20},
		{"support one-on-one vs independent", domain.AnswerSet{"support-preference": domain.TextAnswer("one-on-one")}, base, -10, 20},
		{"support mix", domain.AnswerSet{"support-preference": domain.TextAnswer("mix")}, base, 0, 20},

		{"budget half used", domain.AnswerSet{"budget": domain.NumberAnswer(100)},
			with(base, func(p *domain.Program) { p.MonthlyPrice = 50 }), 12.5, 25},
		{"budget fully used", domain.AnswerSet{"budget": domain.NumberAnswer(100)},
			with(base, func(p *domain.Program) { p.MonthlyPrice = 100 }), 25, 25},
		{"budget exceeded", domain.AnswerSet{"budget": domain.NumberAnswer(100)},
			with(base, func(p *domain.Program) { p.MonthlyPrice = 150 }), -7.5, 25},
		{"budget penalty capped", domain.AnswerSet{"budget": domain.NumberAnswer(100)},
			with(base, func(p *domain.Program) { p.MonthlyPrice = 500 }), -15, 25},
		{"zero budget free program", domain.AnswerSet{"budget": domain.NumberAnswer(0)}, base, 0, 25},
		{"zero budget paid program", domain.AnswerSet{"budget": domain.NumberAnswer(0)},
			with(base, func(p *domain.Program) { p.MonthlyPrice = 10 }), -15, 25},

		{"time match", domain.AnswerSet{"time-commitment": domain.TextAnswer("minimal")}, base, 15, 15},
		{"time too demanding", domain.AnswerSet{"time-commitment": domain.TextAnswer("minimal")},
			with(base, func(p *domain.Program) { p.TimeCommitment = domain.TimeSignificant }), -10, 15},
		{"time moderate vs minimal user", domain.AnswerSet{"time-commitment": domain.TextAnswer("minimal")},
			with(base, func(p *domain.Program) { p.TimeCommitment = domain.TimeModerate }), -10, 15},
		{"time user has more", domain.AnswerSet{"time-commitment": domain.TextAnswer("significant")}, base, 0, 15},

		{"diet match", domain.AnswerSet{"diet-preference": domain.ListAnswer("balanced")}, base, 15, 15},
		{"diet flexible program", domain.AnswerSet{"diet-preference": domain.ListAnswer("vegan")},
			with(base, func(p *domain.Program) { p.DietType = domain.Tags{"flexible"} }), 15, 15},
		{"diet no preference", domain.AnswerSet{"diet-preference": domain.ListAnswer("no-preference")}, base, 10, 15},
		{"diet mismatch", domain.AnswerSet{"diet-preference": domain.ListAnswer("vegan", "paleo")}, base, 0, 15},
		{"diet empty list", domain.AnswerSet{"diet-preference": domain.ListAnswer()},
			with(base, func(p *domain.Program) { p.DietType = domain.Tags{"flexible"} }), 0, 15},

		{"history success", domain.AnswerSet{
			"past-experience":   domain.TextAnswer("success"),
			"previous-programs": domain.ListAnswer("p"),
		}, base, 15, 15},
		{"history failure", domain.AnswerSet{
			"past-experience":   domain.TextAnswer("failure"),
			"previous-programs": domain.ListAnswer("other", "p"),
		}, base, -25, 15},
		{"history other program", domain.AnswerSet{
			"past-experience":   domain.TextAnswer("failure"),
			"previous-programs": domain.ListAnswer("other"),
		}, base, 0, 15},
		{"history first time", domain.AnswerSet{
			"past-experience":   domain.TextAnswer("first-time"),
			"previous-programs": domain.ListAnswer("none"),
		}, base, 0, 15},

		{"exercise none vs high", domain.AnswerSet{"exercise-preference": domain.ListAnswer("none")},
			with(base, func(p *domain.Program) { p.ExerciseRequirement = domain.ExerciseHigh }), -10, 10},
		{"exercise none listed last vs high", domain.AnswerSet{"exercise-preference": domain.ListAnswer("strength", "none")},
			with(base, func(p *domain.Program) { p.ExerciseRequirement = domain.ExerciseHigh }), -10, 10},
		{"exercise cardio vs high", domain.AnswerSet{"exercise-preference": domain.ListAnswer("cardio")},
			with(base, func(p *domain.Program) { p.ExerciseRequirement = domain.ExerciseHigh }), 10, 10},
		{"exercise strength vs low", domain.AnswerSet{"exercise-preference": domain.ListAnswer("strength")}, base, -5, 10},
		{"exercise none first vs low", domain.AnswerSet{"exercise-preference": domain.ListAnswer("none", "strength")}, base, 0, 10},
		{"exercise yoga vs high", domain.AnswerSet{"exercise-preference": domain.ListAnswer("yoga")},
			with(base, func(p *domain.Program) { p.ExerciseRequirement = domain.ExerciseHigh }), 0, 10},
		{"exercise empty", domain.AnswerSet{"exercise-preference": domain.ListAnswer()}, base, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(tt.answers, tt.program)
			assert.InDelta(t, tt.earned, got.score, 1e-9)
			assert.InDelta(t, tt.possible, got.possible, 1e-9)
		})
	}
}

func TestHistoryNeedsBothAnswers(t *testing.T) {
	p := testProgram("p")

	onlyExperience := domain.AnswerSet{"past-experience": domain.TextAnswer("failure")}
	assert.Zero(t, evaluate(onlyExperience, p).possible)

	onlyPrograms := domain.AnswerSet{"previous-programs": domain.ListAnswer("p")}
	assert.Zero(t, evaluate(onlyPrograms, p).possible)
}

func TestScoreClampedToRange(t *testing.T) {
	var answerSets []domain.AnswerSet
	for _, goal := range []string{"quick", "gradual", "sustainable", "muscle"} {
		for _, support := range []string{"group", "one-on-one", "independent", "mix"} {
			for _, budget := range []float64{0, 25, 100, 300} {
				for _, exp := range []string{"success", "failure", "first-time"} {
					answerSets = append(answerSets, domain.AnswerSet{
						"goal":                domain.TextAnswer(goal),
						"support-preference":  domain.TextAnswer(support),
						"budget":              domain.NumberAnswer(budget),
						"time-commitment":     domain.TextAnswer("minimal"),
						"diet-preference":     domain.ListAnswer("keto"),
						"past-experience":     domain.TextAnswer(exp),
						"previous-programs":   domain.ListAnswer("keto-diet", "noom", "personal-trainer"),
						"exercise-preference": domain.ListAnswer("none"),
					})
				}
			}
		}
	}

	for _, answers := range answerSets {
		for _, p := range seeds.Programs() {
			s := Score(answers, p)
			require.GreaterOrEqual(t, s, 0.0)
			require.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	answers := domain.AnswerSet{
		"goal":                domain.TextAnswer("sustainable"),
		"support-preference":  domain.TextAnswer("group"),
		"budget":              domain.NumberAnswer(75),
		"time-commitment":     domain.TextAnswer("moderate"),
		"diet-preference":     domain.ListAnswer("vegetarian"),
		"exercise-preference": domain.ListAnswer("walking", "cardio"),
	}
	for _, p := range seeds.Programs() {
		assert.Equal(t, Score(answers, p), Score(answers, p), p.ID)
	}
}

func TestBudgetRewardsUtilization(t *testing.T) {
	answers := domain.AnswerSet{"budget": domain.NumberAnswer(100)}
	base := testProgram("p")

	prev := -1.0
	for _, price := range []float64{0, 20, 40, 60, 80, 100} {
		p := with(base, func(p *domain.Program) { p.MonthlyPrice = price })
		got := evaluate(answers, p).score
		assert.Greater(t, got, prev, "price %v", price)
		prev = got
	}
}

func TestFailurePenaltyIsFixed(t *testing.T) {
	p := testProgram("X")
	neutral := domain.AnswerSet{
		"goal":              domain.TextAnswer("quick"),
		"past-experience":   domain.TextAnswer("first-time"),
		"previous-programs": domain.ListAnswer("X"),
	}
	failed := domain.AnswerSet{
		"goal":              domain.TextAnswer("quick"),
		"past-experience":   domain.TextAnswer("failure"),
		"previous-programs": domain.ListAnswer("X"),
	}

	before := evaluate(neutral, p)
	after := evaluate(failed, p)
	assert.InDelta(t, 25, before.score-after.score, 1e-9)
	assert.Equal(t, before.possible, after.possible)
	assert.InDelta(t, 25/before.possible*100, Score(neutral, p)-Score(failed, p), 1e-9)
}

func TestOverBudgetNeverOutranksWithinBudget(t *testing.T) {
	answers := domain.AnswerSet{
		"goal":            domain.TextAnswer("quick"),
		"budget":          domain.NumberAnswer(100),
		"time-commitment": domain.TextAnswer("minimal"),
	}
	for _, over := range []float64{101, 150, 1000} {
		for _, within := range []float64{0, 50, 100} {
			a := with(testProgram("over"), func(p *domain.Program) { p.MonthlyPrice = over })
			b := with(testProgram("within"), func(p *domain.Program) { p.MonthlyPrice = within })
			assert.Greater(t, Score(answers, b), Score(answers, a), "over=%v within=%v", over, within)

			recs := Recommend(answers, []domain.Program{a, b})
			all := append(recs.Recommended, recs.NotRecommended...)
			require.Len(t, all, 2)
			assert.Equal(t, "within", all[0].ID)
		}
	}
}
