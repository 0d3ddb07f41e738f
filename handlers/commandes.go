package handlers

import (
	"net/http"

	"resto-api/middleware"
	"resto-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCommandeRequest struct {
	RestaurantID  string          `json:"restaurantId" binding:"required"`
	UtilisateurID string          `json:"utilisateurId" binding:"required"`
	Plats         models.PlatList `json:"plats" binding:"required,min=1"`
	Total         *float64        `json:"total" binding:"required"`
	Statut        string          `json:"statut"`
}

// CreateCommande places an order. The authenticated caller must be
// the utilisateur the commande is placed for.
func (h *Handler) CreateCommande(c *gin.Context) {
	var req CreateCommandeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données manquantes ou invalides"})
		return
	}

	user := middleware.CurrentUser(c)
	if req.UtilisateurID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès refusé : utilisateur non autorisé"})
		return
	}

	commande := models.Commande{
		RestaurantID:  req.RestaurantID,
		UtilisateurID: req.UtilisateurID,
		Plats:         req.Plats,
		Total:         *req.Total,
		Statut:        req.Statut,
	}
	if commande.Statut == "" {
		commande.Statut = models.StatutEnAttente
	}

	if err := h.DB.Create(&commande).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Commande créée avec succès", "id": commande.ID})
}

// ListCommandesByRestaurant returns a restaurant's orders, newest
// first (public).
func (h *Handler) ListCommandesByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurantId")

	var commandes []models.Commande
	if err := h.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&commandes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if commandes == nil {
		commandes = []models.Commande{}
	}
	c.JSON(http.StatusOK, gin.H{"commandes": commandes})
}

// ListCommandesByUtilisateur returns a user's own orders, newest
// first. Requesting another user's orders is refused.
func (h *Handler) ListCommandesByUtilisateur(c *gin.Context) {
	utilisateurID := c.Param("utilisateurId")

	user := middleware.CurrentUser(c)
	if utilisateurID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès refusé"})
		return
	}

	var commandes []models.Commande
	if err := h.DB.Where("utilisateur_id = ?", utilisateurID).
		Order("created_at desc").
		Find(&commandes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if commandes == nil {
		commandes = []models.Commande{}
	}
	c.JSON(http.StatusOK, gin.H{"commandes": commandes})
}

type UpdateStatutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

// UpdateCommandeStatut changes an order's statut (responsable only).
func (h *Handler) UpdateCommandeStatut(c *gin.Context) {
	commandeID := c.Param("commandeId")

	var req UpdateStatutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut manquant ou invalide"})
		return
	}

	if err := h.DB.Model(&models.Commande{}).
		Where("id = ?", commandeID).
		Update("statut", req.Statut).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour avec succès"})
}
