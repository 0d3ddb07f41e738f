package handlers

import (
	"net/http"

	"resto-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenus returns every dish of a restaurant (public).
func (h *Handler) ListMenus(c *gin.Context) {
	restaurantID := c.Param("restaurantId")

	var menus []models.Menu
	if err := h.DB.Where("restaurant_id = ?", restaurantID).Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

type CreateMenuRequest struct {
	Nom          string  `json:"nom" binding:"required"`
	Prix         float64 `json:"prix" binding:"required"`
	Categorie    string  `json:"categorie" binding:"required"`
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Disponible   *bool   `json:"disponible"`
}

// CreateMenu adds a dish to a restaurant's menu
// (restaurant_admin or responsable only).
func (h *Handler) CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données manquantes"})
		return
	}

	menu := models.Menu{
		Nom:          req.Nom,
		Prix:         req.Prix,
		Categorie:    req.Categorie,
		RestaurantID: req.RestaurantID,
		Disponible:   true,
	}
	if req.Disponible != nil {
		menu.Disponible = *req.Disponible
	}

	if err := h.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Plat ajouté", "id": menu.ID})
}
