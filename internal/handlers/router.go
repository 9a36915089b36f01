package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the doctor API under /api/v1/doctor. The patient
// routes all sit behind the auth guard.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	doctor := r.Group("/api/v1/doctor")
	{
		doctor.POST("/register", h.Register)
		doctor.POST("/login", h.Login)
	}

	protected := doctor.Group("")
	protected.Use(requireAuth)
	{
		protected.POST("/add-patient", h.AddPatient)
		protected.GET("/all-patients/:doctorId", h.AllPatients)
		protected.GET("/patient/:id", h.GetPatient)
		protected.POST("/add-record/:id", h.AddRecord)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
			"route":   c.Request.URL.Path,
		})
	})
}
