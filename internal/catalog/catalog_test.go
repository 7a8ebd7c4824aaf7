package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/seeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func program(id string) domain.Program {
	return domain.Program{
		ID:                  id,
		Name:                "Program " + id,
		Website:             "https://example.com/" + id,
		SupportType:         domain.Tags{"independent"},
		ExerciseRequirement: domain.ExerciseLow,
		TimeCommitment:      domain.TimeMinimal,
		BestFor:             domain.Tags{"quick"},
		NotSuitableFor:      domain.Tags{"muscle"},
	}
}

func TestNewRejectsOverlappingTags(t *testing.T) {
	p := program("a")
	p.NotSuitableFor = domain.Tags{"muscle", "quick"}

	_, err := New(nil, []domain.Program{p})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), `program "a": best_for and not_suitable_for share [quick]`)
}

func TestNewRejectsBadRecords(t *testing.T) {
	badPrice := program("price")
	badPrice.MonthlyPrice = -1
	badLevel := program("level")
	badLevel.ExerciseRequirement = "extreme"

	_, err := New(
		[]domain.Question{
			{ID: "q1", Text: "Pick", Type: domain.QuestionSingleChoice},
			{ID: "q2", Text: "Slide", Type: domain.QuestionSlider},
			{ID: "q3", Text: "Odd", Type: "dropdown"},
		},
		[]domain.Program{program("dup"), program("dup"), badPrice, badLevel},
	)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `question "q1": choice question has no options`)
	assert.Contains(t, msg, `question "q2": slider needs min < max`)
	assert.Contains(t, msg, `question "q3": type must be one of`)
	assert.Contains(t, msg, `program "dup": duplicate id`)
	assert.Contains(t, msg, `program "price": monthly_price must be greater than or equal to 0`)
	assert.Contains(t, msg, `program "level": exercise_requirement must be one of`)
}

func TestEmptyCatalogIsValid(t *testing.T) {
	snap, err := New(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, snap.Programs())
	assert.Empty(t, snap.Questions())
	assert.NotEmpty(t, snap.Version())
}

func TestSnapshotIsolatedFromCallers(t *testing.T) {
	programs := []domain.Program{program("a")}
	snap, err := New(nil, programs)
	require.NoError(t, err)

	programs[0].BestFor[0] = "changed"
	got, ok := snap.Program("a")
	require.True(t, ok)
	assert.Equal(t, domain.Tags{"quick"}, got.BestFor)

	got.BestFor[0] = "changed again"
	list := snap.Programs()
	assert.Equal(t, domain.Tags{"quick"}, list[0].BestFor)

	list[0].SupportType[0] = "group"
	again, _ := snap.Program("a")
	assert.Equal(t, domain.Tags{"independent"}, again.SupportType)
}

func TestVersionTracksContent(t *testing.T) {
	a, err := New(seeds.Questions(), seeds.Programs())
	require.NoError(t, err)
	b, err := New(seeds.Questions(), seeds.Programs())
	require.NoError(t, err)
	assert.Equal(t, a.Version(), b.Version())

	changed := seeds.Programs()
	changed[0].MonthlyPrice++
	c, err := New(seeds.Questions(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version(), c.Version())
}

func TestLookup(t *testing.T) {
	snap, err := New(seeds.Questions(), seeds.Programs())
	require.NoError(t, err)

	p, ok := snap.Program("noom")
	require.True(t, ok)
	assert.Equal(t, "Noom", p.Name)

	_, ok = snap.Program("missing")
	assert.False(t, ok)

	q, ok := snap.Question("budget")
	require.True(t, ok)
	assert.Equal(t, domain.QuestionSlider, q.Type)
	assert.Equal(t, "goal", snap.Questions()[0].ID)
}

func TestCheckAnswers(t *testing.T) {
	snap, err := New(seeds.Questions(), seeds.Programs())
	require.NoError(t, err)

	issues := snap.CheckAnswers(domain.AnswerSet{
		"goal":            domain.TextAnswer("quick"),
		"budget":          domain.NumberAnswer(400),
		"diet-preference": domain.ListAnswer("vegan", "carnivore"),
		"time-commitment": domain.ListAnswer("minimal"),
		"support":         domain.TextAnswer("group"),
		"past-experience": domain.TextAnswer("sometimes"),
	})

	assert.Equal(t, []domain.AnswerIssue{
		{QuestionID: "budget", Message: "400 is outside 0..300"},
		{QuestionID: "diet-preference", Message: `"carnivore" is not an option`},
		{QuestionID: "past-experience", Message: `"sometimes" is not an option`},
		{QuestionID: "support", Message: "unknown question"},
		{QuestionID: "time-commitment", Message: "expected text answer, got list"},
	}, issues)

	assert.Empty(t, snap.CheckAnswers(domain.AnswerSet{
		"goal":   domain.TextAnswer("muscle"),
		"budget": domain.NumberAnswer(300),
	}))
}

func TestStoreReplace(t *testing.T) {
	first, err := New(nil, []domain.Program{program("a")})
	require.NoError(t, err)
	second, err := New(nil, []domain.Program{program("b")})
	require.NoError(t, err)

	st := NewStore(first)
	assert.Same(t, first, st.Current())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := st.Current()
			assert.Len(t, snap.Programs(), 1)
		}()
	}
	prev := st.Replace(second)
	wg.Wait()

	assert.Same(t, first, prev)
	assert.Same(t, second, st.Current())
	assert.Nil(t, NewStore(nil).Current())
}
