package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Employer struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username string `gorm:"column:username;type:text;uniqueIndex" json:"username"`

	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`

	Company string         `gorm:"column:company;type:text" json:"company"`
	Stacks  pq.StringArray `gorm:"column:stacks;type:text[]" json:"stacks"` // stacks this employer recruits for

	// Saved dashboard filter (raw JSON, seeded into the dashboard form)
	SavedFilter datatypes.JSON `gorm:"column:saved_filter;type:jsonb" json:"saved_filter"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Employer) TableName() string { return "employers" }
