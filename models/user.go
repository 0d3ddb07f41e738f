package models

import (
	"time"
)

// UserRole classifies a user's privilege level
type UserRole string

const (
	RoleClient          UserRole = "client"
	RoleResponsable     UserRole = "responsable"
	RoleRestaurantAdmin UserRole = "restaurant_admin"
	RoleAdmin           UserRole = "admin"
)

// User is the directory document backing every authorization decision.
// Its ID always equals the identity provider's subject id.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"not null"`
	Nom          string    `json:"nom" gorm:"not null"`
	Prenom       string    `json:"prenom"`
	Telephone    string    `json:"telephone"`
	Role         UserRole  `json:"role" gorm:"not null"`
	RestaurantID string    `json:"restaurantId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "utilisateurs" }
