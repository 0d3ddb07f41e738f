package handlers

import (
	"net/http"

	"resto-api/models"

	"github.com/gin-gonic/gin"
)

type CreateResponsableRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Nom          string `json:"nom" binding:"required"`
	Prenom       string `json:"prenom" binding:"required"`
	Telephone    string `json:"telephone" binding:"required"`
	RestaurantID string `json:"restaurantId" binding:"required"`
}

// CreateResponsable provisions a manager account for an existing
// restaurant (admin only).
func (h *Handler) CreateResponsable(c *gin.Context) {
	var req CreateResponsableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs obligatoires manquants"})
		return
	}

	uid, err := h.Auth.CreateAccount(req.Email, req.Password, req.Prenom+" "+req.Nom, req.Telephone)
	if err != nil {
		respondIdentityError(c, err, "Erreur serveur")
		return
	}

	user := models.User{
		ID:           uid,
		Email:        req.Email,
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Telephone:    req.Telephone,
		Role:         models.RoleResponsable,
		RestaurantID: req.RestaurantID,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Responsable créé avec succès", "uid": uid})
}

type CreateRestaurantEtResponsableRequest struct {
	NomRestaurant       string `json:"nomRestaurant" binding:"required"`
	Adresse             string `json:"adresse" binding:"required"`
	ResponsableNom      string `json:"responsableNom" binding:"required"`
	ResponsablePrenom   string `json:"responsablePrenom" binding:"required"`
	ResponsableEmail    string `json:"responsableEmail" binding:"required,email"`
	ResponsablePassword string `json:"responsablePassword" binding:"required,min=6"`
	Telephone           string `json:"telephone" binding:"required"`
}

// CreateRestaurantEtResponsable creates a restaurant and its manager
// in one call (admin only). The three writes — provider account,
// restaurant, directory record — run sequentially without a
// transaction: a failure partway leaves the earlier writes in place.
func (h *Handler) CreateRestaurantEtResponsable(c *gin.Context) {
	var req CreateRestaurantEtResponsableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs obligatoires manquants"})
		return
	}

	displayName := req.ResponsablePrenom + " " + req.ResponsableNom

	uid, err := h.Auth.CreateAccount(req.ResponsableEmail, req.ResponsablePassword, displayName, req.Telephone)
	if err != nil {
		respondIdentityError(c, err, "Erreur serveur")
		return
	}

	restaurant := models.Restaurant{
		Nom:              req.NomRestaurant,
		Adresse:          req.Adresse,
		ResponsableNom:   displayName,
		EmailResponsable: req.ResponsableEmail,
		ResponsableID:    uid,
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	user := models.User{
		ID:           uid,
		Email:        req.ResponsableEmail,
		Nom:          req.ResponsableNom,
		Prenom:       req.ResponsablePrenom,
		Telephone:    req.Telephone,
		Role:         models.RoleResponsable,
		RestaurantID: restaurant.ID,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Restaurant et responsable créés avec succès",
		"restaurantId":   restaurant.ID,
		"responsableUid": uid,
	})
}
