package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/middleware"
	"github.com/medicore/clinic-api/internal/validation"
)

// authedDoctorID reads the identity the auth guard resolved.
func authedDoctorID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(middleware.CtxDoctorID)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// AddPatient creates a patient owned by the authenticated doctor. The owner
// is taken from the token identity only; a doctor id in the body is ignored.
func (h *Handler) AddPatient(c *gin.Context) {
	doctorID, ok := authedDoctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	var in validation.AddPatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	patient, err := h.Patients.Create(c.Request.Context(), doctorID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Patient added successfully",
		"patient": patient,
	})
}

// AllPatients lists the patients owned by the doctor in the path. The path
// id must match the authenticated doctor; one doctor cannot enumerate
// another's patients.
func (h *Handler) AllPatients(c *gin.Context) {
	doctorID, ok := authedDoctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
		return
	}

	pathID, err := primitive.ObjectIDFromHex(c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor id"})
		return
	}
	if pathID != doctorID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot access another doctor's patients"})
		return
	}

	patients, err := h.Patients.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	message := "Patients fetched successfully"
	if len(patients) == 0 {
		message = "No patients found for this doctor"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  message,
		"patients": patients,
	})
}

// GetPatient returns one patient with its owning doctor populated.
func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.Patients.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Patient fetched successfully",
		"patient": patient,
	})
}

// AddRecord appends one medical-history entry to a patient and returns the
// updated record.
func (h *Handler) AddRecord(c *gin.Context) {
	var in validation.HistoryEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	patient, err := h.Patients.AppendRecord(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Medical record added successfully",
		"patient": patient,
	})
}
