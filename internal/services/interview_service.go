package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/models"
	"github.com/talentscout/scout/internal/providers/llm"
	"github.com/talentscout/scout/internal/utils"
)

type InterviewService interface {
	Start(ctx context.Context) (*interview.Session, error)
	Get(ctx context.Context, sessionID string) (*interview.Session, error)
	Reset(ctx context.Context, sessionID string) (*interview.Session, error)
	// Message runs one full turn: capture, user append, model round trip,
	// assistant append, completion check, finalize poll.
	Message(ctx context.Context, sessionID, text string) (*TurnResult, error)
	// MessageStream is Message with the assistant reply emitted chunk by
	// chunk before the final result.
	MessageStream(ctx context.Context, sessionID, text string, emit func(chunk string) error) (*TurnResult, error)
	AttachResume(sessionID, objectName string) error
}

type TurnResult struct {
	Reply    string            `json:"reply"`
	Captured interview.Profile `json:"captured"`
	Complete bool              `json:"complete"`
	Finalize interview.Outcome `json:"finalize"`
}

type interviewService struct {
	registry   *interview.Registry
	provider   llm.Provider
	candidates CandidateService
	log        *logrus.Logger
}

func NewInterviewService(registry *interview.Registry, provider llm.Provider, candidates CandidateService, log *logrus.Logger) InterviewService {
	return &interviewService{registry: registry, provider: provider, candidates: candidates, log: log}
}

func (s *interviewService) Start(ctx context.Context) (*interview.Session, error) {
	return s.registry.Create(uuid.NewString()), nil
}

func (s *interviewService) Get(ctx context.Context, sessionID string) (*interview.Session, error) {
	const op = "InterviewService.Get"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", nil)
	}
	return sess, nil
}

func (s *interviewService) Reset(ctx context.Context, sessionID string) (*interview.Session, error) {
	const op = "InterviewService.Reset"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	if _, ok := s.registry.Get(sessionID); !ok {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", nil)
	}
	return s.registry.Reset(sessionID), nil
}

func (s *interviewService) Message(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	return s.turn(ctx, sessionID, text, nil)
}

func (s *interviewService) MessageStream(ctx context.Context, sessionID, text string, emit func(string) error) (*TurnResult, error) {
	return s.turn(ctx, sessionID, text, emit)
}

func (s *interviewService) turn(ctx context.Context, sessionID, text string, emit func(string) error) (*TurnResult, error) {
	const op = "InterviewService.Message"

	if text == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message text is required", nil)
	}
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	// Answer log and field capture happen before the round trip; both stay
	// valid even if generation fails and the user retries.
	sess.RecordAnswer(text)
	sess.Captured = interview.Extract(sess.Captured, text)
	sess.AppendUserTurn(text)

	reply, err := s.generate(ctx, sess.Transcript, emit)
	if err != nil {
		// user turn stays on the transcript; no assistant turn is appended
		return nil, utils.E(utils.CodeUnavailable, op, "model round trip failed", err)
	}
	sess.AppendAssistantTurn(reply)

	outcome, ferr := interview.MaybeFinalize(sess,
		func(techStack, answers string) (string, error) {
			return s.provider.Evaluate(ctx, techStack, answers)
		},
		func(rec *models.Candidate) bool {
			return s.candidates.Save(ctx, rec)
		},
	)
	if ferr != nil {
		// evaluation failed; the guard stays open so the next poll retries
		s.log.WithError(ferr).WithField("session_id", sessionID).Warn("candidate evaluation failed")
	}

	return &TurnResult{
		Reply:    reply,
		Captured: sess.Captured,
		Complete: interview.Complete(sess),
		Finalize: outcome,
	}, nil
}

func (s *interviewService) generate(ctx context.Context, transcript []interview.Turn, emit func(string) error) (string, error) {
	if emit == nil {
		return s.provider.Generate(ctx, transcript)
	}

	chunks, errs := s.provider.GenerateStream(ctx, transcript)
	var b strings.Builder
	for chunk := range chunks {
		b.WriteString(chunk)
		if err := emit(chunk); err != nil {
			return "", err
		}
	}
	if err := <-errs; err != nil {
		return "", err
	}
	if b.Len() == 0 {
		return "", errors.New("model returned an empty reply")
	}
	return b.String(), nil
}

func (s *interviewService) AttachResume(sessionID, objectName string) error {
	const op = "InterviewService.AttachResume"

	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return utils.E(utils.CodeNotFound, op, "session not found", nil)
	}
	sess.Lock()
	sess.ResumeObject = objectName
	sess.Unlock()
	return nil
}
