package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/models"
	"github.com/talentscout/scout/internal/utils"
)

type stubCandidateRepo struct {
	records   []models.Candidate
	listErr   error
	insertErr error
}

func (s *stubCandidateRepo) Insert(ctx context.Context, c *models.Candidate) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.records = append(s.records, *c)
	return nil
}

func (s *stubCandidateRepo) ListAll(ctx context.Context) ([]models.Candidate, error) {
	return s.records, s.listErr
}

func (s *stubCandidateRepo) GetByCandidateID(ctx context.Context, id string) (*models.Candidate, error) {
	for i := range s.records {
		if s.records[i].CandidateID == id {
			return &s.records[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

type stubSigner struct{ url string }

func (s *stubSigner) SignedGetURL(ctx context.Context, objectName string, ttl time.Duration) (string, error) {
	return s.url + objectName, nil
}

func TestDashboardAppliesFilter(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubCandidateRepo{records: []models.Candidate{
		{CandidateID: "a", TechStack: "Python, SQL", Experience: 2, Timestamp: ts},
		{CandidateID: "b", TechStack: "Go, Kubernetes", Experience: 5, Timestamp: ts.Add(time.Hour)},
		{CandidateID: "c", TechStack: "python/django", Experience: 1, Timestamp: ts.Add(2 * time.Hour)},
	}}
	svc := NewCandidateService(repo, nil, nil, quietLogger())

	got, err := svc.Dashboard(context.Background(), interview.Filter{TechSubstring: "py", MinExperience: 2})
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if len(got) != 1 || got[0].CandidateID != "a" {
		t.Errorf("Dashboard() = %+v, want just record a", got)
	}
}

// A failed read serves an empty dashboard, not an error.
func TestDashboardDegradesOnReadFailure(t *testing.T) {
	repo := &stubCandidateRepo{listErr: errors.New("connection reset")}
	svc := NewCandidateService(repo, nil, nil, quietLogger())

	got, err := svc.Dashboard(context.Background(), interview.Filter{})
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Dashboard() = %d records, want 0", len(got))
	}
}

func TestSaveReportsFailureAsFalse(t *testing.T) {
	repo := &stubCandidateRepo{insertErr: errors.New("write refused")}
	svc := NewCandidateService(repo, nil, nil, quietLogger())

	if svc.Save(context.Background(), &models.Candidate{CandidateID: "x"}) {
		t.Error("Save() = true, want false on insert failure")
	}

	repo.insertErr = nil
	if !svc.Save(context.Background(), &models.Candidate{CandidateID: "x"}) {
		t.Error("Save() = false, want true")
	}
}

func TestResumeLink(t *testing.T) {
	repo := &stubCandidateRepo{records: []models.Candidate{
		{CandidateID: "a", ResumeObject: "resumes/s1/x.pdf"},
		{CandidateID: "b"},
	}}
	svc := NewCandidateService(repo, nil, &stubSigner{url: "https://signed/"}, quietLogger())

	url, err := svc.ResumeLink(context.Background(), "a")
	if err != nil {
		t.Fatalf("ResumeLink() error = %v", err)
	}
	if url != "https://signed/resumes/s1/x.pdf" {
		t.Errorf("ResumeLink() = %q", url)
	}

	if _, err := svc.ResumeLink(context.Background(), "b"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("no-resume error = %v, want NOT_FOUND", err)
	}
	if _, err := svc.ResumeLink(context.Background(), "zzz"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("unknown-candidate error = %v, want NOT_FOUND", err)
	}
}
