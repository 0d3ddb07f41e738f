package handlers

import (
	"net/http"

	"resto-api/models"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns every restaurant (public).
func (h *Handler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.DB.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

type CreateRestaurantRequest struct {
	Nom         string `json:"nom" binding:"required"`
	Adresse     string `json:"adresse" binding:"required"`
	Telephone   string `json:"telephone" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateRestaurant registers a new restaurant (admin only).
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tous les champs sont requis"})
		return
	}

	restaurant := models.Restaurant{
		Nom:         req.Nom,
		Adresse:     req.Adresse,
		Telephone:   req.Telephone,
		Email:       req.Email,
		Description: req.Description,
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout du restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant ajouté avec succès", "id": restaurant.ID})
}
