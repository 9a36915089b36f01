package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/models"
)

// Sentinel errors the service layer maps to user-facing responses.
var (
	// ErrNotFound means no document matched the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means an insert collided with a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// DoctorStore persists doctor credentials. Uniqueness of doctorName and
// email is enforced by the store, not by callers.
type DoctorStore interface {
	Insert(ctx context.Context, doctor *models.Doctor) error
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
}

// PatientStore persists patient records. AppendHistory is a single atomic
// array push keyed by patient id; there is no read-modify-write path.
type PatientStore interface {
	Insert(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error)
	AppendHistory(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error)
}
