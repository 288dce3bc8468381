package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/models"
	pgrepo "github.com/talentscout/scout/internal/repositories/postgres"
	"github.com/talentscout/scout/internal/utils"
)

const tokenTTL = 12 * time.Hour

type EmployerService interface {
	// Login checks credentials and issues a dashboard token. Unknown user
	// and wrong password are the same outcome: invalid credentials.
	Login(ctx context.Context, username, password string) (token string, emp *models.Employer, err error)
	Get(ctx context.Context, employerID string) (*models.Employer, error)
	SavedFilter(ctx context.Context, employerID string) (interview.Filter, error)
	UpdateSavedFilter(ctx context.Context, employerID string, f interview.Filter) error
}

type employerService struct {
	employers pgrepo.EmployerRepository
	jwtSecret []byte
}

func NewEmployerService(employers pgrepo.EmployerRepository, jwtSecret string) EmployerService {
	return &employerService{employers: employers, jwtSecret: []byte(jwtSecret)}
}

func (s *employerService) Login(ctx context.Context, username, password string) (string, *models.Employer, error) {
	const op = "EmployerService.Login"

	if username == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}

	emp, err := s.employers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to load employer", err)
	}

	if err := utils.CheckPassword(emp.PasswordHash, password); err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   emp.ID,
		Issuer:    "talentscout",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, emp, nil
}

func (s *employerService) Get(ctx context.Context, employerID string) (*models.Employer, error) {
	const op = "EmployerService.Get"

	if employerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "employer_id is required", nil)
	}
	emp, err := s.employers.GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "employer not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get employer", err)
	}
	return emp, nil
}

func (s *employerService) SavedFilter(ctx context.Context, employerID string) (interview.Filter, error) {
	var f interview.Filter

	emp, err := s.Get(ctx, employerID)
	if err != nil {
		return f, err
	}
	if len(emp.SavedFilter) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(emp.SavedFilter, &f); err != nil {
		// corrupt saved filter behaves like no saved filter
		return interview.Filter{}, nil
	}
	return f, nil
}

func (s *employerService) UpdateSavedFilter(ctx context.Context, employerID string, f interview.Filter) error {
	const op = "EmployerService.UpdateSavedFilter"

	if employerID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "employer_id is required", nil)
	}
	if f.MinExperience < 0 {
		return utils.E(utils.CodeInvalidArgument, op, "min_experience must be non-negative", nil)
	}

	b, err := json.Marshal(f)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to encode filter", err)
	}
	if err := s.employers.UpdateSavedFilter(ctx, employerID, b); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update saved filter", err)
	}
	return nil
}
