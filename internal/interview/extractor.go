package interview

import (
	"strconv"
	"strings"
)

// Extract applies the intake script's priority chain to one user turn and
// fills at most one profile field. The chain halts at the first unset field
// whether or not the turn satisfies it, so a turn that fails its field's
// check (an email without "@", an experience reply with no number) is
// consumed without capturing anything. Deliberately not content-aware: a
// name turn containing "@" is still a name.
func Extract(captured Profile, text string) Profile {
	switch {
	case captured.Name == "":
		captured.Name = text
	case captured.Email == "":
		if strings.Contains(text, "@") {
			captured.Email = text
		}
	case captured.Experience == nil:
		if n, ok := firstNonNegativeInt(text); ok {
			captured.Experience = &n
		}
	case captured.TechStack == "":
		captured.TechStack = text
	}
	return captured
}

func firstNonNegativeInt(text string) (int, bool) {
	for _, tok := range strings.Fields(text) {
		n, err := strconv.Atoi(tok)
		if err == nil && n >= 0 {
			return n, true
		}
	}
	return 0, false
}
