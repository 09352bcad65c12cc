package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking keeps only the owning reference; customer contact details are
// resolved from User when rendered.
type Booking struct {
	// Seq is the insertion order assigned by the database.
	Seq uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	ID  string `gorm:"uniqueIndex;size:36;not null" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Service string `gorm:"size:100;not null" json:"service"`
	Price   string `gorm:"size:32;not null" json:"price"`
	Address string `gorm:"size:255" json:"address"`
	Date    string `gorm:"size:10;not null" json:"date"`
	Time    string `gorm:"size:5;not null" json:"time"`

	Status      string     `gorm:"size:20;default:'Confirmed'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
