package domain

import (
	"bytes"
	"math"
	"slices"

	"github.com/goccy/go-json"
)

// AnswerKind tags the shape of an answer value.
type AnswerKind int

const (
	AnswerInvalid AnswerKind = iota
	AnswerText
	AnswerList
	AnswerNumber
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerText:
		return "text"
	case AnswerList:
		return "list"
	case AnswerNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Answer holds exactly one of a text, a list of strings or a number.
// Values that decode to none of those are kept as AnswerInvalid and read
// as absent by every accessor.
type Answer struct {
	kind   AnswerKind
	text   string
	list   []string
	number float64
}

func TextAnswer(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

func ListAnswer(values ...string) Answer {
	list := slices.Clone(values)
	if list == nil {
		list = []string{}
	}
	return Answer{kind: AnswerList, list: list}
}

func NumberAnswer(f float64) Answer {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Answer{}
	}
	return Answer{kind: AnswerNumber, number: f}
}

func (a Answer) Kind() AnswerKind {
	return a.kind
}

func (a Answer) Text() (string, bool) {
	return a.text, a.kind == AnswerText
}

// List returns the list payload. Callers must not modify it.
func (a Answer) List() ([]string, bool) {
	return a.list, a.kind == AnswerList
}

func (a Answer) Number() (float64, bool) {
	return a.number, a.kind == AnswerNumber
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerText:
		return json.Marshal(a.text)
	case AnswerList:
		return json.Marshal(a.list)
	case AnswerNumber:
		return json.Marshal(a.number)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON maps a JSON string, array of strings or number onto the
// matching kind. Any other value decodes to an invalid answer, not an error.
func (a *Answer) UnmarshalJSON(b []byte) error {
	*a = Answer{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*a = TextAnswer(s)
	case '[':
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return nil
		}
		*a = ListAnswer(list...)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return nil
		}
		*a = NumberAnswer(f)
	}
	return nil
}

// AnswerSet maps question id to answer. Missing keys mean the question was
// not answered.
type AnswerSet map[string]Answer

// Text returns a non-empty text answer.
func (s AnswerSet) Text(key string) (string, bool) {
	v, ok := s[key].Text()
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s AnswerSet) List(key string) ([]string, bool) {
	return s[key].List()
}

func (s AnswerSet) Number(key string) (float64, bool) {
	return s[key].Number()
}

// Keys returns the answered question ids in sorted order.
func (s AnswerSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
