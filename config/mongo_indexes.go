package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	candidates := db.Collection("candidates")
	_, err := candidates.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "candidate_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_candidate_id").
				SetUnique(true),
		},
		// dashboard default ordering
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("by_timestamp"),
		},
		// filter helper
		{
			Keys:    bson.D{{Key: "tech_stack", Value: 1}, {Key: "experience", Value: -1}},
			Options: options.Index().SetName("by_stack_experience"),
		},
	})
	return err
}
