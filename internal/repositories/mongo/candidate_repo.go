package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/talentscout/scout/internal/models"
	"github.com/talentscout/scout/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CandidateRepository interface {
	Insert(ctx context.Context, c *models.Candidate) error
	ListAll(ctx context.Context) ([]models.Candidate, error)
	GetByCandidateID(ctx context.Context, candidateID string) (*models.Candidate, error)
}

type candidateRepo struct {
	col *mongo.Collection
}

func NewCandidateRepo(db *mongo.Database) CandidateRepository {
	return &candidateRepo{col: db.Collection("candidates")}
}

func (r *candidateRepo) Insert(ctx context.Context, c *models.Candidate) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *candidateRepo) ListAll(ctx context.Context) ([]models.Candidate, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Candidate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *candidateRepo) GetByCandidateID(ctx context.Context, candidateID string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"candidate_id": candidateID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}
