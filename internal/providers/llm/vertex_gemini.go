package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"

	"github.com/talentscout/scout/internal/interview"
)

const evaluatorInstruction = "You are a senior technical recruiter evaluating candidate responses."

type VertexGemini struct {
	client    *vertexgenai.Client
	modelName string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	return &VertexGemini{client: c, modelName: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Generate(ctx context.Context, transcript []interview.Turn) (string, error) {
	cs, last, err := v.chat(transcript)
	if err != nil {
		return "", err
	}

	resp, err := cs.SendMessage(ctx, vertexgenai.Text(last))
	if err != nil {
		return "", err
	}

	reply := flatten(resp)
	if reply == "" {
		return "", errors.New("model returned no text candidates")
	}
	return reply, nil
}

func (v *VertexGemini) GenerateStream(ctx context.Context, transcript []interview.Turn) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errs := make(chan error, 1)

	cs, last, err := v.chat(transcript)
	if err != nil {
		errs <- err
		close(out)
		close(errs)
		return out, errs
	}

	go func() {
		defer close(out)
		defer close(errs)

		it := cs.SendMessageStream(ctx, vertexgenai.Text(last))
		for {
			resp, err := it.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				errs <- err
				return
			}
			if t := flatten(resp); t != "" {
				out <- t
			}
		}
	}()

	return out, errs
}

func (v *VertexGemini) Evaluate(ctx context.Context, techStack, answers string) (string, error) {
	prompt := fmt.Sprintf(`You are a senior technical recruiter. Based on the candidate's answers below, provide a brief evaluation.
Tech Stack: %s
Answers: %s
Respond with a concise evaluation in 2-3 sentences.`, techStack, answers)

	m := v.client.GenerativeModel(v.modelName)
	m.SystemInstruction = &vertexgenai.Content{
		Parts: []vertexgenai.Part{vertexgenai.Text(evaluatorInstruction)},
	}

	resp, err := m.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return "", err
	}

	eval := strings.TrimSpace(flatten(resp))
	if eval == "" {
		return "", errors.New("model returned no text candidates")
	}
	return eval, nil
}

// chat splits the transcript into system instruction, chat history, and the
// pending user message.
func (v *VertexGemini) chat(transcript []interview.Turn) (*vertexgenai.ChatSession, string, error) {
	var system []string
	var history []*vertexgenai.Content
	for _, t := range transcript {
		switch t.Role {
		case interview.RoleSystem:
			system = append(system, t.Content)
		case interview.RoleAssistant:
			history = append(history, &vertexgenai.Content{
				Role:  "model",
				Parts: []vertexgenai.Part{vertexgenai.Text(t.Content)},
			})
		case interview.RoleUser:
			history = append(history, &vertexgenai.Content{
				Role:  "user",
				Parts: []vertexgenai.Part{vertexgenai.Text(t.Content)},
			})
		}
	}

	if len(history) == 0 || history[len(history)-1].Role != "user" {
		return nil, "", errors.New("transcript must end with a user turn")
	}
	last, _ := history[len(history)-1].Parts[0].(vertexgenai.Text)
	history = history[:len(history)-1]

	m := v.client.GenerativeModel(v.modelName)
	m.SetTemperature(0.7)
	if len(system) > 0 {
		m.SystemInstruction = &vertexgenai.Content{
			Parts: []vertexgenai.Part{vertexgenai.Text(strings.Join(system, "\n"))},
		}
	}

	cs := m.StartChat()
	cs.History = history
	return cs, string(last), nil
}

func flatten(resp *vertexgenai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
