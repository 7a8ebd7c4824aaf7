package domain

import "slices"

type ExerciseLevel string

const (
	ExerciseLow    ExerciseLevel = "low"
	ExerciseMedium ExerciseLevel = "medium"
	ExerciseHigh   ExerciseLevel = "high"
)

type TimeCommitment string

const (
	TimeMinimal     TimeCommitment = "minimal"
	TimeModerate    TimeCommitment = "moderate"
	TimeSignificant TimeCommitment = "significant"
)

// Tags is an ordered list of classification tags matched with set semantics.
type Tags []string

func (t Tags) Has(tag string) bool {
	return slices.Contains(t, tag)
}

// Overlap returns the tags present in both t and other, in t's order.
func (t Tags) Overlap(other Tags) []string {
	var out []string
	for _, tag := range t {
		if other.Has(tag) && !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

type Program struct {
	ID                  string         `json:"id" validate:"required"`
	Name                string         `json:"name" validate:"required"`
	Description         string         `json:"description"`
	MonthlyPrice        float64        `json:"monthly_price" validate:"gte=0"`
	Website             string         `json:"website" validate:"omitempty,url"`
	Features            []string       `json:"features"`
	Pros                []string       `json:"pros"`
	Cons                []string       `json:"cons"`
	SupportType         Tags           `json:"support_type"`
	DietType            Tags           `json:"diet_type"`
	ExerciseRequirement ExerciseLevel  `json:"exercise_requirement" validate:"oneof=low medium high"`
	TimeCommitment      TimeCommitment `json:"time_commitment" validate:"oneof=minimal moderate significant"`
	BestFor             Tags           `json:"best_for"`
	NotSuitableFor      Tags           `json:"not_suitable_for"`
}

// Clone returns a deep copy so callers can't reach shared catalog slices.
func (p Program) Clone() Program {
	p.Features = slices.Clone(p.Features)
	p.Pros = slices.Clone(p.Pros)
	p.Cons = slices.Clone(p.Cons)
	p.SupportType = slices.Clone(p.SupportType)
	p.DietType = slices.Clone(p.DietType)
	p.BestFor = slices.Clone(p.BestFor)
	p.NotSuitableFor = slices.Clone(p.NotSuitableFor)
	return p
}
