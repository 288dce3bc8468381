package postgres

import (
	"context"
	"errors"

	"github.com/talentscout/scout/internal/models"
	"github.com/talentscout/scout/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployerRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Employer, error)
	GetByID(ctx context.Context, id string) (*models.Employer, error)
	Upsert(ctx context.Context, e *models.Employer) error
	UpdateSavedFilter(ctx context.Context, id string, filter []byte) error
}

type employerRepo struct {
	db *gorm.DB
}

func NewEmployerRepo(db *gorm.DB) EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByUsername(ctx context.Context, username string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employerRepo) GetByID(ctx context.Context, id string) (*models.Employer, error) {
	var e models.Employer
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employerRepo) Upsert(ctx context.Context, e *models.Employer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "company", "stacks", "saved_filter", "updated_at"}),
		}).
		Create(e).Error
}

func (r *employerRepo) UpdateSavedFilter(ctx context.Context, id string, filter []byte) error {
	return r.db.WithContext(ctx).
		Model(&models.Employer{}).
		Where("id = ?", id).
		Update("saved_filter", filter).Error
}
