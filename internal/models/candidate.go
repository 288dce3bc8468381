package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Candidate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CandidateID string             `bson:"candidate_id" json:"candidate_id"` // uuid v4

	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Experience int    `bson:"experience" json:"experience"` // years
	TechStack  string `bson:"tech_stack" json:"tech_stack"`

	Responses  string `bson:"responses" json:"responses"`   // "Q: ...\nA: ..." blocks
	Evaluation string `bson:"evaluation" json:"evaluation"` // recruiter summary from the LLM

	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	ResumeObject string    `bson:"resume_object,omitempty" json:"resume_object,omitempty"` // GCS object key
}
