package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is unique per (user, store); resubmissions overwrite Value.
type Rating struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store" json:"user_id"`
	StoreID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store;index" json:"store_id"`
	Value   int    `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	User  User  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Store Store `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
