package interview

import "strings"

// Terminal phrases the closing script ends on. Substring match against the
// final assistant turn; a stray early "thank you" from the model will also
// trigger completion (reference behavior, kept as-is).
const (
	phraseRecruiter = "recruiter will be in touch"
	phraseThankYou  = "thank you"
)

// Complete reports whether the interview has reached terminal state: every
// profile field captured and the assistant's last turn containing a terminal
// phrase.
func Complete(s *Session) bool {
	if !s.Captured.complete() {
		return false
	}
	last := ""
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == RoleAssistant {
			last = s.Transcript[i].Content
			break
		}
	}
	last = strings.ToLower(last)
	return strings.Contains(last, phraseRecruiter) || strings.Contains(last, phraseThankYou)
}

func (p Profile) complete() bool {
	return p.Name != "" &&
		p.Email != "" && strings.Contains(p.Email, "@") &&
		p.Experience != nil &&
		p.TechStack != ""
}
