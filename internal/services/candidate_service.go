package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talentscout/scout/internal/cache"
	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/models"
	mongorepo "github.com/talentscout/scout/internal/repositories/mongo"
	"github.com/talentscout/scout/internal/storage"
	"github.com/talentscout/scout/internal/utils"
)

const (
	candidatesCacheKey = "candidates:all"
	candidatesCacheTTL = 30 * time.Second
	resumeLinkTTL      = 15 * time.Minute
)

type CandidateService interface {
	// Save writes a finalized candidate record; it reports failure as
	// false and never propagates an error past the store boundary.
	Save(ctx context.Context, rec *models.Candidate) bool
	// Dashboard applies the employer filter over the full record set,
	// most recent first. A failed read degrades to an empty result.
	Dashboard(ctx context.Context, f interview.Filter) ([]models.Candidate, error)
	// ResumeLink signs a short-lived download URL for a candidate's resume.
	ResumeLink(ctx context.Context, candidateID string) (string, error)
}

type candidateService struct {
	candidates mongorepo.CandidateRepository
	cache      cache.Cache
	signer     storage.Signer
	log        *logrus.Logger
}

func NewCandidateService(candidates mongorepo.CandidateRepository, c cache.Cache, signer storage.Signer, log *logrus.Logger) CandidateService {
	return &candidateService{candidates: candidates, cache: c, signer: signer, log: log}
}

func (s *candidateService) Save(ctx context.Context, rec *models.Candidate) bool {
	if err := s.candidates.Insert(ctx, rec); err != nil {
		s.log.WithError(err).WithField("candidate_id", rec.CandidateID).Error("candidate save failed")
		return false
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, candidatesCacheKey)
	}
	return true
}

func (s *candidateService) Dashboard(ctx context.Context, f interview.Filter) ([]models.Candidate, error) {
	records := s.loadAll(ctx)
	return interview.Query(records, f), nil
}

// loadAll is a read-through on the Redis cache; any read failure comes back
// as an empty collection rather than an error.
func (s *candidateService) loadAll(ctx context.Context) []models.Candidate {
	var records []models.Candidate

	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, candidatesCacheKey, &records); err == nil && hit {
			return records
		}
	}

	records, err := s.candidates.ListAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("candidate list read failed; serving empty set")
		return nil
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, candidatesCacheKey, records, candidatesCacheTTL)
	}
	return records
}

func (s *candidateService) ResumeLink(ctx context.Context, candidateID string) (string, error) {
	const op = "CandidateService.ResumeLink"

	if candidateID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "candidate_id is required", nil)
	}

	rec, err := s.candidates.GetByCandidateID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}
	if rec.ResumeObject == "" {
		return "", utils.E(utils.CodeNotFound, op, "candidate has no resume on file", nil)
	}
	if s.signer == nil {
		return "", utils.E(utils.CodeInternal, op, "signer is not configured", nil)
	}

	url, err := s.signer.SignedGetURL(ctx, rec.ResumeObject, resumeLinkTTL)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to sign resume url", err)
	}
	return url, nil
}
