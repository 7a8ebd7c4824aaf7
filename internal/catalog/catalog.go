// Package catalog holds the question list and program catalog the engine
// reads. A Snapshot is validated once and never changes; Store swaps whole
// snapshots so a reload never exposes a half-edited catalog.
package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/internal/validation"
	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

type Snapshot struct {
	questions   []domain.Question
	programs    []domain.Program
	questionIdx map[string]int
	programIdx  map[string]int
	version     string
}

// New validates and copies questions and programs into a Snapshot.
// Later changes to the input slices are not visible through it.
func New(questions []domain.Question, programs []domain.Program) (*Snapshot, error) {
	s := &Snapshot{
		questions:   make([]domain.Question, 0, len(questions)),
		programs:    make([]domain.Program, 0, len(programs)),
		questionIdx: make(map[string]int, len(questions)),
		programIdx:  make(map[string]int, len(programs)),
	}

	var errs []error
	for _, q := range questions {
		if err := validateQuestion(q); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := s.questionIdx[q.ID]; dup {
			errs = append(errs, fmt.Errorf("question %q: duplicate id", q.ID))
			continue
		}
		s.questionIdx[q.ID] = len(s.questions)
		s.questions = append(s.questions, q.Clone())
	}
	for _, p := range programs {
		if err := validateProgram(p); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := s.programIdx[p.ID]; dup {
			errs = append(errs, fmt.Errorf("program %q: duplicate id", p.ID))
			continue
		}
		s.programIdx[p.ID] = len(s.programs)
		s.programs = append(s.programs, p.Clone())
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	version, err := fingerprint(s.questions, s.programs)
	if err != nil {
		return nil, err
	}
	s.version = version
	return s, nil
}

func validateQuestion(q domain.Question) error {
	if err := validation.Struct(&q); err != nil {
		return fmt.Errorf("question %q: %w", q.ID, err)
	}
	if q.IsChoice() && len(q.Options) == 0 {
		return fmt.Errorf("question %q: choice question has no options", q.ID)
	}
	if q.Type == domain.QuestionSlider {
		if q.Min == nil || q.Max == nil || *q.Min >= *q.Max {
			return fmt.Errorf("question %q: slider needs min < max", q.ID)
		}
	}
	return nil
}

func validateProgram(p domain.Program) error {
	if err := validation.Struct(&p); err != nil {
		return fmt.Errorf("program %q: %w", p.ID, err)
	}
	if overlap := p.BestFor.Overlap(p.NotSuitableFor); len(overlap) > 0 {
		return fmt.Errorf("program %q: best_for and not_suitable_for share %v", p.ID, overlap)
	}
	return nil
}

func fingerprint(questions []domain.Question, programs []domain.Program) (string, error) {
	b, err := json.Marshal(struct {
		Questions []domain.Question `json:"questions"`
		Programs  []domain.Program  `json:"programs"`
	}{questions, programs})
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// Version identifies the snapshot's content. Equal content, equal version.
func (s *Snapshot) Version() string {
	return s.version
}

func (s *Snapshot) Questions() []domain.Question {
	out := make([]domain.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

func (s *Snapshot) Programs() []domain.Program {
	out := make([]domain.Program, len(s.programs))
	for i, p := range s.programs {
		out[i] = p.Clone()
	}
	return out
}

func (s *Snapshot) Question(id string) (domain.Question, bool) {
	i, ok := s.questionIdx[id]
	if !ok {
		return domain.Question{}, false
	}
	return s.questions[i].Clone(), true
}

func (s *Snapshot) Program(id string) (domain.Program, bool) {
	i, ok := s.programIdx[id]
	if !ok {
		return domain.Program{}, false
	}
	return s.programs[i].Clone(), true
}
