package interview

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentscout/scout/internal/models"
)

type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomePersisted Outcome = "persisted"
	OutcomeFailed    Outcome = "failed"
)

// EvaluateFunc scores the logged answers for a tech stack. Fallible: a
// failed evaluation fails the whole finalize attempt.
type EvaluateFunc func(techStack, answers string) (string, error)

// PersistFunc writes the assembled record; it reports failure as false and
// never panics or errors past the store boundary.
type PersistFunc func(rec *models.Candidate) bool

// MaybeFinalize runs the evaluate-then-persist step at most once per
// session. It is safe to poll on every turn: the guard skips until the
// interview is complete, and once a write succeeds the persisted flag blocks
// any further attempt. A failed attempt leaves the flag false so a later
// poll retries.
func MaybeFinalize(s *Session, evaluate EvaluateFunc, persist PersistFunc) (Outcome, error) {
	if s.Persisted || !Complete(s) {
		return OutcomeSkipped, nil
	}

	eval, err := evaluate(s.Captured.TechStack, s.Answers)
	if err != nil {
		return OutcomeFailed, err
	}

	rec := &models.Candidate{
		CandidateID:  uuid.NewString(),
		Name:         s.Captured.Name,
		Email:        s.Captured.Email,
		Experience:   *s.Captured.Experience,
		TechStack:    s.Captured.TechStack,
		Responses:    s.Answers,
		Evaluation:   eval,
		Timestamp:    time.Now().UTC(),
		ResumeObject: s.ResumeObject,
	}

	ok := persist(rec)
	s.Persisted = ok
	if !ok {
		return OutcomeFailed, nil
	}
	return OutcomePersisted, nil
}
