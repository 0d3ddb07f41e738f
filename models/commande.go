package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatutEnAttente is the statut stamped on freshly created commandes.
const StatutEnAttente = "en attente"

// Plat is one line of a commande.
type Plat struct {
	Nom      string  `json:"nom"`
	Prix     float64 `json:"prix"`
	Quantite int     `json:"quantite,omitempty"`
}

// PlatList stores the order lines as a JSON document inside the
// commande row, the way the collection store keeps them embedded.
type PlatList []Plat

func (p PlatList) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PlatList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("plats: cannot scan type %T", src)
}

type Commande struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	RestaurantID  string    `json:"restaurantId" gorm:"index;not null"`
	UtilisateurID string    `json:"utilisateurId" gorm:"index;not null"`
	Plats         PlatList  `json:"plats" gorm:"type:text;not null"`
	Total         float64   `json:"total" gorm:"not null"`
	Statut        string    `json:"statut" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (co *Commande) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}
	return nil
}

func (Commande) TableName() string { return "commandes" }
