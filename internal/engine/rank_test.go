package engine

import (
	"testing"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/seeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendEmptyCatalog(t *testing.T) {
	recs := Recommend(domain.AnswerSet{"goal": domain.TextAnswer("quick")}, nil)

	assert.NotNil(t, recs.Recommended)
	assert.NotNil(t, recs.NotRecommended)
	assert.Empty(t, recs.Recommended)
	assert.Empty(t, recs.NotRecommended)
}

func TestRecommendEmptyAnswers(t *testing.T) {
	programs := seeds.Programs()
	recs := Recommend(domain.AnswerSet{}, programs)

	assert.Empty(t, recs.Recommended)
	require.Len(t, recs.NotRecommended, len(programs))
	for i, sp := range recs.NotRecommended {
		assert.Equal(t, NeutralScore, sp.Score)
		// all tied, so catalog order survives
		assert.Equal(t, programs[i].ID, sp.ID)
	}
}

func TestRecommendQuickIndependentScenario(t *testing.T) {
	free := domain.Program{
		ID:                  "free-quick",
		Name:                "Free Quick",
		MonthlyPrice:        0,
		SupportType:         domain.Tags{"independent"},
		DietType:            domain.Tags{"balanced"},
		ExerciseRequirement: domain.ExerciseLow,
		TimeCommitment:      domain.TimeMinimal,
		BestFor:             domain.Tags{"quick"},
	}
	pricey := domain.Program{
		ID:                  "pricey",
		Name:                "Pricey",
		MonthlyPrice:        300,
		SupportType:         domain.Tags{"one-on-one"},
		ExerciseRequirement: domain.ExerciseHigh,
		TimeCommitment:      domain.TimeSignificant,
		BestFor:             domain.Tags{"muscle"},
		NotSuitableFor:      domain.Tags{"quick"},
	}
	answers := domain.AnswerSet{
		"goal":               domain.TextAnswer("quick"),
		"support-preference": domain.TextAnswer("independent"),
		"budget":             domain.NumberAnswer(0),
		"time-commitment":    domain.TextAnswer("minimal"),
	}

	recs := Recommend(answers, []domain.Program{pricey, free})

	require.Len(t, recs.Recommended, 1)
	got := recs.Recommended[0]
	assert.Equal(t, "free-quick", got.ID)
	assert.InDelta(t, 65.0/90.0*100, got.Score, 1e-9)
	assert.Contains(t, got.Reasons, "Aligns with your goal of losing weight quickly")

	require.Len(t, recs.NotRecommended, 1)
	assert.Equal(t, "pricey", recs.NotRecommended[0].ID)
	assert.Zero(t, recs.NotRecommended[0].Score)
}

func TestRecommendPartitionsCatalog(t *testing.T) {
	programs := seeds.Programs()
	answers := domain.AnswerSet{
		"goal":                domain.TextAnswer("sustainable"),
		"support-preference":  domain.TextAnswer("group"),
		"budget":              domain.NumberAnswer(50),
		"time-commitment":     domain.TextAnswer("moderate"),
		"diet-preference":     domain.ListAnswer("no-preference"),
		"exercise-preference": domain.ListAnswer("walking"),
	}

	recs := Recommend(answers, programs)

	assert.Len(t, append(recs.Recommended, recs.NotRecommended...), len(programs))
	seen := map[string]bool{}
	for _, sp := range recs.Recommended {
		assert.GreaterOrEqual(t, sp.Score, Threshold, sp.ID)
		assert.False(t, seen[sp.ID])
		seen[sp.ID] = true
	}
	for _, sp := range recs.NotRecommended {
		assert.Less(t, sp.Score, Threshold, sp.ID)
		assert.False(t, seen[sp.ID])
		seen[sp.ID] = true
	}
	assert.Len(t, seen, len(programs))

	// weight watchers: goal, group support, within budget, moderate time, flexible diet
	require.NotEmpty(t, recs.Recommended)
	assert.Equal(t, "weight-watchers", recs.Recommended[0].ID)
}

func TestRecommendSortedAndStable(t *testing.T) {
	programs := []domain.Program{
		testProgram("a"),
		with(testProgram("b"), func(p *domain.Program) { p.BestFor = nil }),
		testProgram("c"),
		with(testProgram("d"), func(p *domain.Program) { p.BestFor = nil }),
	}
	answers := domain.AnswerSet{
		"goal":            domain.TextAnswer("quick"),
		"time-commitment": domain.TextAnswer("minimal"),
	}

	first := Recommend(answers, programs)
	second := Recommend(answers, programs)
	assert.Equal(t, first, second)

	ids := func(list []domain.ScoredProgram) []string {
		var out []string
		for _, sp := range list {
			out = append(out, sp.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a", "c"}, ids(first.Recommended))
	assert.Equal(t, []string{"b", "d"}, ids(first.NotRecommended))
}

func TestRecommendDoesNotMutateInput(t *testing.T) {
	programs := seeds.Programs()
	before := seeds.Programs()
	answers := domain.AnswerSet{"diet-preference": domain.ListAnswer("keto")}

	Recommend(answers, programs)

	assert.Equal(t, before, programs)
	list, _ := answers.List("diet-preference")
	assert.Equal(t, []string{"keto"}, list)
}
