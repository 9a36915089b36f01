package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/store"
	"github.com/medicore/clinic-api/internal/utils"
)

// AuthHeader carries the signed token on authenticated routes.
const AuthHeader = "x-auth-token"

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxDoctorID    = "doctorID"
	CtxDoctorEmail = "doctorEmail"
)

// RequireAuth verifies the request's token and resolves it to a doctor that
// still exists in the store. A well-formed token whose owner has been
// deleted is rejected, not passed through.
func RequireAuth(doctors store.DoctorStore, tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(AuthHeader)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token, authorization denied",
			})
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token is not valid",
			})
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.DoctorID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token is not valid",
			})
			return
		}

		doctor, err := doctors.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Invalid token",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
			return
		}

		c.Set(CtxDoctorID, doctor.ID)
		c.Set(CtxDoctorEmail, doctor.Email)
		c.Next()
	}
}
