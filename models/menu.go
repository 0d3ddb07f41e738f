package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu is a single dish on a restaurant's menu.
type Menu struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Nom          string    `json:"nom" gorm:"not null"`
	Prix         float64   `json:"prix" gorm:"not null"`
	Categorie    string    `json:"categorie"`
	Disponible   bool      `json:"disponible"`
	RestaurantID string    `json:"restaurantId" gorm:"index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (Menu) TableName() string { return "menus" }
