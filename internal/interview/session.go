package interview

import (
	"fmt"
	"sync"
)

const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// SystemPrompt drives the whole intake script; the model asks the questions,
// the extractor only reads the answers.
const SystemPrompt = `You are an AI-powered hiring assistant for TalentScout. Your job is to:
1. Ask the candidate's name.
2. Ask for email and years of experience.
3. Ask about their primary tech stack.
4. Ask 2-3 technical questions based on that stack.
5. Thank them and say a recruiter will be in touch.`

const Greeting = "Hi! I'm TalentScout. Can we start with your full name?"

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds the structured fields captured from free-text turns.
// Fields fill in a fixed order and are never overwritten once set.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Experience *int   `json:"experience"` // nil until captured
	TechStack  string `json:"tech_stack"`
}

// Session is the ephemeral state of one interview conversation. It is owned
// by a single caller at a time; compound turn operations hold the mutex.
type Session struct {
	sync.Mutex

	ID         string
	Transcript []Turn
	Captured   Profile
	Answers    string // accumulated "Q: ...\nA: ..." blocks
	Persisted  bool

	ResumeObject string // set out-of-band by the resume upload path
}

func NewSession(id string) *Session {
	return &Session{
		ID: id,
		Transcript: []Turn{
			{Role: RoleSystem, Content: SystemPrompt},
			{Role: RoleAssistant, Content: Greeting},
		},
	}
}

func (s *Session) AppendUserTurn(text string) {
	s.Transcript = append(s.Transcript, Turn{Role: RoleUser, Content: text})
}

func (s *Session) AppendAssistantTurn(text string) {
	s.Transcript = append(s.Transcript, Turn{Role: RoleAssistant, Content: text})
}

// LastAssistantQuestion scans from the end of the transcript; empty if the
// assistant has not spoken yet.
func (s *Session) LastAssistantQuestion() string {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == RoleAssistant {
			return s.Transcript[i].Content
		}
	}
	return ""
}

// RecordAnswer logs the user's reply against the question it answers.
func (s *Session) RecordAnswer(userText string) {
	s.Answers += fmt.Sprintf("Q: %s\nA: %s\n", s.LastAssistantQuestion(), userText)
}
