package interview

import (
	"sort"
	"strings"

	"github.com/talentscout/scout/internal/models"
)

// Filter is the employer dashboard query. An empty TechSubstring matches
// every record.
type Filter struct {
	TechSubstring string `json:"tech_substring"`
	MinExperience int    `json:"min_experience"`
}

func (f Filter) Matches(rec models.Candidate) bool {
	if rec.Experience < f.MinExperience {
		return false
	}
	return strings.Contains(strings.ToLower(rec.TechStack), strings.ToLower(f.TechSubstring))
}

// Query filters the record collection and orders matches most recent first.
// Ties keep their input order. The input slice is not mutated.
func Query(records []models.Candidate, f Filter) []models.Candidate {
	out := make([]models.Candidate, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
