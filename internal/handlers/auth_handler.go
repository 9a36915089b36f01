package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/clinic-api/internal/validation"
)

// Register creates a doctor account and returns a signed token alongside the
// created record.
func (h *Handler) Register(c *gin.Context) {
	var in validation.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	doctor, token, err := h.Doctors.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Doctor registered successfully",
		"token":   token,
		"doctor":  doctor,
	})
}

// Login authenticates a doctor and returns a fresh token.
func (h *Handler) Login(c *gin.Context) {
	var in validation.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	doctor, token, err := h.Doctors.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"token":   token,
		"email":   doctor.Email,
		"id":      doctor.ID.Hex(),
	})
}
