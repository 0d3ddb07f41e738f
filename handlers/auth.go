package handlers

import (
	"net/http"

	"resto-api/identity"
	"resto-api/middleware"
	"resto-api/models"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	Nom       string          `json:"nom" binding:"required"`
	Prenom    string          `json:"prenom" binding:"required"`
	Telephone string          `json:"telephone" binding:"required"`
	Role      models.UserRole `json:"role"`
}

// Signup provisions an identity-provider account, then mirrors the
// profile into the user directory under the same uid.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tous les champs obligatoires doivent être remplis"})
		return
	}

	uid, err := h.Auth.CreateAccount(req.Email, req.Password, req.Prenom+" "+req.Nom, req.Telephone)
	if err != nil {
		respondIdentityError(c, err, "Erreur serveur lors de la création de l'utilisateur")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	user := models.User{
		ID:        uid,
		Email:     req.Email,
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Telephone: req.Telephone,
		Role:      role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur lors de la création de l'utilisateur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Utilisateur créé avec succès", "uid": uid})
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signin checks the credentials with the identity provider and
// returns a bearer token for the session.
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	uid, err := h.Auth.VerifyPassword(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := h.Auth.IssueToken(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connexion réussie", "uid": uid, "token": token})
}

type UpdateProfilRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UpdateProfil merges the supplied fields into the caller's directory
// record, then forwards the provider-owned subset (email, phone,
// password, display name) to the identity provider.
func (h *Handler) UpdateProfil(c *gin.Context) {
	var req UpdateProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données manquantes ou invalides"})
		return
	}

	user := middleware.CurrentUser(c)

	updates := map[string]interface{}{}
	if req.Nom != "" {
		updates["nom"] = req.Nom
	}
	if req.Prenom != "" {
		updates["prenom"] = req.Prenom
	}
	if req.Telephone != "" {
		updates["telephone"] = req.Telephone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if len(updates) > 0 {
		if err := h.DB.Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour du profil"})
			return
		}
	}

	upd := identity.AccountUpdate{
		Email:     req.Email,
		Telephone: req.Telephone,
		Password:  req.Password,
	}
	if req.Nom != "" && req.Prenom != "" {
		upd.DisplayName = req.Prenom + " " + req.Nom
	}
	if upd != (identity.AccountUpdate{}) {
		if err := h.Auth.UpdateAccount(user.ID, upd); err != nil {
			respondIdentityError(c, err, "Erreur lors de la mise à jour du profil")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour avec succès"})
}
