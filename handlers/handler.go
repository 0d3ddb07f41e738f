package handlers

import (
	"errors"
	"net/http"

	"resto-api/identity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler groups the process-wide dependencies every route shares:
// the store handle and the identity provider client, both initialized
// once at startup.
type Handler struct {
	DB   *gorm.DB
	Auth *identity.Service
}

func New(db *gorm.DB, auth *identity.Service) *Handler {
	return &Handler{DB: db, Auth: auth}
}

// respondIdentityError maps identity provider failures onto the HTTP
// contract: duplicate email/phone are client errors, everything else
// is a server error with the given fallback message.
func respondIdentityError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, identity.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cet email est déjà utilisé"})
	case errors.Is(err, identity.ErrDuplicatePhone):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ce numéro de téléphone est déjà utilisé"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
