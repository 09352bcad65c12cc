package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	// Seq is the insertion order assigned by the database.
	Seq uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	ID  string `gorm:"uniqueIndex;size:36;not null" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Contact details typed into the feedback form.
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Service  string `gorm:"size:100" json:"service"`
	Rating   int    `gorm:"not null" json:"rating"`
	Message  string `gorm:"type:text" json:"message"`
	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (f *Feedback) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
