package interview

import "testing"

func intp(n int) *int { return &n }

func TestExtractPriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		captured Profile
		text     string
		want     Profile
	}{
		{
			name: "first turn is always the name",
			text: "Jane Doe",
			want: Profile{Name: "Jane Doe"},
		},
		{
			name: "name wins even when the turn looks like an email",
			text: "jane@example.com",
			want: Profile{Name: "jane@example.com"},
		},
		{
			name:     "email captured when it contains @",
			captured: Profile{Name: "Jane"},
			text:     "jane@example.com",
			want:     Profile{Name: "Jane", Email: "jane@example.com"},
		},
		{
			name:     "email turn without @ captures nothing",
			captured: Profile{Name: "Jane"},
			text:     "I have 3 years",
			want:     Profile{Name: "Jane"},
		},
		{
			name:     "experience takes the first integer token",
			captured: Profile{Name: "Jane", Email: "jane@example.com"},
			text:     "around 5 years, maybe 6",
			want:     Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(5)},
		},
		{
			name:     "experience turn with no integer stays pending",
			captured: Profile{Name: "Jane", Email: "jane@example.com"},
			text:     "quite a few years",
			want:     Profile{Name: "Jane", Email: "jane@example.com"},
		},
		{
			name:     "negative tokens are not experience",
			captured: Profile{Name: "Jane", Email: "jane@example.com"},
			text:     "-2 or so",
			want:     Profile{Name: "Jane", Email: "jane@example.com"},
		},
		{
			name:     "tech stack is taken verbatim",
			captured: Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(3)},
			text:     "React and Node",
			want:     Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(3), TechStack: "React and Node"},
		},
		{
			name:     "all fields set means no-op",
			captured: Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(3), TechStack: "Go"},
			text:     "my answer to a technical question",
			want:     Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(3), TechStack: "Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.captured, tt.text)
			assertProfile(t, got, tt.want)
		})
	}
}

// A turn that fails its field's check is consumed by that field, not passed
// down the chain: the numeric turn below is spent attempting email.
func TestExtractHaltsAtFirstUnsetField(t *testing.T) {
	turns := []string{"Jane Doe", "not an email", "I have 3 years", "React and Node"}

	var p Profile
	for _, turn := range turns {
		p = Extract(p, turn)
	}

	want := Profile{Name: "Jane Doe"}
	assertProfile(t, p, want)
}

func TestExtractNeverOverwrites(t *testing.T) {
	p := Profile{Name: "Jane", Email: "jane@example.com", Experience: intp(3), TechStack: "Go"}
	before := p

	for _, turn := range []string{"John", "john@example.com", "10", "Rust"} {
		p = Extract(p, turn)
	}
	assertProfile(t, p, before)
}

func assertProfile(t *testing.T, got, want Profile) {
	t.Helper()
	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if got.Email != want.Email {
		t.Errorf("Email = %q, want %q", got.Email, want.Email)
	}
	switch {
	case got.Experience == nil && want.Experience != nil:
		t.Errorf("Experience = nil, want %d", *want.Experience)
	case got.Experience != nil && want.Experience == nil:
		t.Errorf("Experience = %d, want nil", *got.Experience)
	case got.Experience != nil && want.Experience != nil && *got.Experience != *want.Experience:
		t.Errorf("Experience = %d, want %d", *got.Experience, *want.Experience)
	}
	if got.TechStack != want.TechStack {
		t.Errorf("TechStack = %q, want %q", got.TechStack, want.TechStack)
	}
}
