package llm

import (
	"context"

	"github.com/talentscout/scout/internal/interview"
)

// Provider is the language-model collaborator behind the interview. All
// calls are blocking round trips; a failed call returns an error and the
// caller decides what to surface.
type Provider interface {
	// Generate produces the next assistant turn from the full transcript.
	Generate(ctx context.Context, transcript []interview.Turn) (string, error)
	// GenerateStream is Generate with the reply delivered in chunks.
	GenerateStream(ctx context.Context, transcript []interview.Turn) (chunks <-chan string, errs <-chan error)
	// Evaluate scores the logged answers for a tech stack in 2-3 sentences.
	Evaluate(ctx context.Context, techStack, answers string) (string, error)
	Close() error
}
