package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Nom         string    `json:"nom" gorm:"not null"`
	Adresse     string    `json:"adresse"`
	Telephone   string    `json:"telephone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	// Set by the combined admin flow that creates a restaurant
	// together with its manager.
	ResponsableID    string    `json:"responsableId,omitempty"`
	ResponsableNom   string    `json:"responsableNom,omitempty"`
	EmailResponsable string    `json:"emailResponsable,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (Restaurant) TableName() string { return "restaurants" }
