package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string  `gorm:"size:60;not null;index" json:"name"`
	Email   *string `gorm:"size:255" json:"email"`
	Address string  `gorm:"size:400;not null" json:"address"`

	OwnerID *string `gorm:"type:uuid;index" json:"owner_id"`
	Owner   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
