package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/models"
	"github.com/medicore/clinic-api/internal/services"
	"github.com/medicore/clinic-api/internal/validation"
)

// DoctorService is the registration/login contract the handlers depend on.
type DoctorService interface {
	Register(ctx context.Context, in validation.RegisterInput) (*models.Doctor, string, error)
	Login(ctx context.Context, in validation.LoginInput) (*models.Doctor, string, error)
}

// PatientService is the patient-workflow contract the handlers depend on.
type PatientService interface {
	Create(ctx context.Context, doctorID primitive.ObjectID, in validation.AddPatientInput) (*models.PatientWithDoctor, error)
	AppendRecord(ctx context.Context, idHex string, in validation.HistoryEntryInput) (*models.Patient, error)
	ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error)
	FindByID(ctx context.Context, idHex string) (*models.PatientWithDoctor, error)
}

// Handler groups the HTTP handlers and their collaborators.
type Handler struct {
	Doctors  DoctorService
	Patients PatientService
}

func NewHandler(doctors DoctorService, patients PatientService) *Handler {
	return &Handler{Doctors: doctors, Patients: patients}
}

// writeError maps the service error taxonomy onto HTTP responses. Store
// failures surface as a generic message; detail stays in the logs.
func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": verrs.Error(),
			"errors":  verrs,
		})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists!"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email or password"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
