package middleware

import (
	"net/http"
	"strings"

	"resto-api/identity"
	"resto-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const contextUserKey = "utilisateur"

// AuthRequired authenticates the bearer token with the identity
// provider, then resolves the caller in the user directory. The
// resolved user (including their role) is attached to the context
// before the handler runs.
func AuthRequired(auth *identity.Service, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token manquant ou invalide"})
			return
		}

		uid, err := auth.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalide ou expiré"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RoleRequired enforces that the caller resolved by AuthRequired has
// one of the allowed roles.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok || user.Role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Rôle utilisateur non défini"})
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Accès refusé : rôle non autorisé"})
	}
}

// CurrentUser returns the directory record resolved by AuthRequired.
func CurrentUser(c *gin.Context) models.User {
	user, _ := currentUser(c)
	return user
}

func currentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get(contextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
