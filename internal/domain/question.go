package domain

import "slices"

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionSlider       QuestionType = "slider"
	QuestionText         QuestionType = "text"
)

// Question ids the scoring engine reads.
const (
	QuestionGoal               = "goal"
	QuestionPastExperience     = "past-experience"
	QuestionPreviousPrograms   = "previous-programs"
	QuestionSupportPreference  = "support-preference"
	QuestionBudget             = "budget"
	QuestionTimeCommitment     = "time-commitment"
	QuestionDietPreference     = "diet-preference"
	QuestionExercisePreference = "exercise-preference"
)

// Answer values with scoring meaning.
const (
	GoalQuick       = "quick"
	GoalGradual     = "gradual"
	GoalSustainable = "sustainable"
	GoalMuscle      = "muscle"

	SupportGroup       = "group"
	SupportOneOnOne    = "one-on-one"
	SupportIndependent = "independent"
	SupportMix         = "mix"

	ExperienceSuccess   = "success"
	ExperienceFailure   = "failure"
	ExperienceFirstTime = "first-time"

	DietFlexible     = "flexible"
	DietNoPreference = "no-preference"

	ExerciseNone     = "none"
	ExerciseStrength = "strength"
	ExerciseCardio   = "cardio"
)

type QuestionOption struct {
	ID    string `json:"id" validate:"required"`
	Text  string `json:"text" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type Question struct {
	ID          string           `json:"id" validate:"required"`
	Text        string           `json:"text" validate:"required"`
	Type        QuestionType     `json:"type" validate:"oneof=single-choice multi-choice slider text"`
	Options     []QuestionOption `json:"options,omitempty" validate:"dive"`
	Min         *float64         `json:"min,omitempty"`
	Max         *float64         `json:"max,omitempty"`
	Step        *float64         `json:"step,omitempty"`
	MinLabel    string           `json:"min_label,omitempty"`
	MaxLabel    string           `json:"max_label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
}

func (q Question) IsChoice() bool {
	return q.Type == QuestionSingleChoice || q.Type == QuestionMultiChoice
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	return slices.ContainsFunc(q.Options, func(o QuestionOption) bool {
		return o.Value == value
	})
}

// ExpectedKind is the answer shape a question produces.
func (q Question) ExpectedKind() AnswerKind {
	switch q.Type {
	case QuestionMultiChoice:
		return AnswerList
	case QuestionSlider:
		return AnswerNumber
	default:
		return AnswerText
	}
}

func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	q.Min = cloneFloat(q.Min)
	q.Max = cloneFloat(q.Max)
	q.Step = cloneFloat(q.Step)
	return q
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
