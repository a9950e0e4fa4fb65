package assessment

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownQuestion is returned when an answer is recorded for a question
// id that is not part of the catalog.
var ErrUnknownQuestion = errors.New("question is not in the catalog")

// Session tracks one assessment run: the current phase, the question cursor
// within that phase, and the answers recorded so far. It is owned by a
// single run and is not safe for concurrent use.
type Session struct {
	catalog       *Catalog
	phase         int
	questionIndex int
	answers       map[string]*Answer
	startedAt     time.Time
	completedAt   time.Time
}

// NewSession creates a not-started session over the given catalog.
func NewSession(catalog *Catalog) *Session {
	return &Session{
		catalog:   catalog,
		phase:     PhaseNotStarted,
		answers:   make(map[string]*Answer),
		startedAt: time.Now(),
	}
}

// Start moves a not-started session to phase 1 and stamps startedAt.
// Calling it again once started is a no-op, so startedAt stays stable.
func (s *Session) Start() {
	if s.phase != PhaseNotStarted {
		return
	}
	s.phase = PhaseBusiness
	s.questionIndex = 0
	s.startedAt = time.Now()
}

// RecordAnswer inserts or overwrites the answer for its question. The
// cursor is not advanced. Recording for an id outside the catalog fails
// with ErrUnknownQuestion.
func (s *Session) RecordAnswer(answer *Answer) error {
	if answer == nil {
		return fmt.Errorf("answer is required")
	}
	if _, ok := s.catalog.Question(answer.QuestionID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, answer.QuestionID)
	}
	s.answers[answer.QuestionID] = answer
	return nil
}

// Advance moves the cursor forward: to the next question of the phase, to
// the next phase when the phase is exhausted, and into Results after the
// last question of phase 2, stamping completedAt. A no-op in Results.
func (s *Session) Advance() {
	if s.phase < PhaseBusiness || s.phase > PhaseReadiness {
		return
	}

	if s.questionIndex < len(s.catalog.ByPhase(s.phase))-1 {
		s.questionIndex++
		return
	}

	s.phase++
	s.questionIndex = 0
	if s.phase == PhaseResults {
		s.completedAt = time.Now()
	}
}

// Retreat moves the cursor backward: to the previous question of the phase,
// or to the last question of the previous phase. A no-op on the very first
// question and in Results.
func (s *Session) Retreat() {
	if s.phase < PhaseBusiness || s.phase > PhaseReadiness {
		return
	}

	if s.questionIndex > 0 {
		s.questionIndex--
		return
	}

	if s.phase > PhaseBusiness {
		s.phase--
		s.questionIndex = len(s.catalog.ByPhase(s.phase)) - 1
	}
}

// Reset returns the session to the not-started state with no answers and a
// fresh startedAt. Valid from any state.
func (s *Session) Reset() {
	s.phase = PhaseNotStarted
	s.questionIndex = 0
	s.answers = make(map[string]*Answer)
	s.startedAt = time.Now()
	s.completedAt = time.Time{}
}

// CurrentQuestion returns the question under the cursor, or nil outside the
// answering phases.
func (s *Session) CurrentQuestion() *Question {
	if s.phase < PhaseBusiness || s.phase > PhaseReadiness {
		return nil
	}
	questions := s.catalog.ByPhase(s.phase)
	if s.questionIndex >= len(questions) {
		return nil
	}
	return questions[s.questionIndex]
}

// Phase returns the current phase (0 not started, 1-2 answering, 3 results).
func (s *Session) Phase() int { return s.phase }

// QuestionIndex returns the cursor position within the current phase.
func (s *Session) QuestionIndex() int { return s.questionIndex }

// Answer returns the recorded answer for a question id, if any.
func (s *Session) Answer(questionID string) (*Answer, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}

// Answers returns a copy of the answers mapping keyed by question id.
func (s *Session) Answers() map[string]*Answer {
	out := make(map[string]*Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// IsFirstQuestion reports whether the cursor sits on the first question of
// phase 1.
func (s *Session) IsFirstQuestion() bool {
	return s.phase == PhaseBusiness && s.questionIndex == 0
}

// IsLastQuestion reports whether the cursor sits on the final answerable
// question. False in Results.
func (s *Session) IsLastQuestion() bool {
	if s.phase != PhaseReadiness {
		return false
	}
	return s.questionIndex == len(s.catalog.ByPhase(PhaseReadiness))-1
}

// Progress returns the share of answered questions as a 0-100 percentage,
// counting unique answered ids regardless of phase.
func (s *Session) Progress() float64 {
	total := s.catalog.TotalQuestionCount()
	if total == 0 {
		return 0
	}
	return float64(len(s.answers)) / float64(total) * 100
}

// StartedAt returns the time the session was started.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CompletedAt returns the time the session entered Results; the zero time
// until then.
func (s *Session) CompletedAt() time.Time { return s.completedAt }

// Results computes the scores and recommendations for the answers recorded
// so far.
func (s *Session) Results() *Results {
	return s.catalog.ComputeResults(s.answers)
}
