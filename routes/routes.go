package routes

import (
	"resto-api/handlers"
	"resto-api/middleware"
	"resto-api/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes binds every route to its handler and access rules.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	auth := middleware.AuthRequired(h.Auth, h.DB)

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/restaurants", h.ListRestaurants)
	r.GET("/menus/:restaurantId", h.ListMenus)
	r.GET("/commandes/:restaurantId", h.ListCommandesByRestaurant)
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/signin", h.Signin)

	// ── Authenticated routes ───────────────────────────────────────
	r.POST("/commandes", auth, h.CreateCommande)
	r.GET("/commandes/utilisateur/:utilisateurId", auth, h.ListCommandesByUtilisateur)
	r.PATCH("/auth/profil", auth, h.UpdateProfil)

	// ── Role-gated routes ──────────────────────────────────────────
	r.POST("/menus", auth,
		middleware.RoleRequired(models.RoleRestaurantAdmin, models.RoleResponsable),
		h.CreateMenu)
	r.POST("/restaurants", auth,
		middleware.RoleRequired(models.RoleAdmin),
		h.CreateRestaurant)
	r.PATCH("/commandes/:commandeId", auth,
		middleware.RoleRequired(models.RoleResponsable),
		h.UpdateCommandeStatut)

	// ── Admin provisioning ─────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(auth, middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/creer-responsable", h.CreateResponsable)
		admin.POST("/ajouter-restaurant-et-responsable", h.CreateRestaurantEtResponsable)
	}
}
