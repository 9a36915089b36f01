package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/models"
	"github.com/medicore/clinic-api/internal/store"
	"github.com/medicore/clinic-api/internal/validation"
)

// ErrNotFound mirrors the store sentinel so handlers only depend on the
// service package for the error taxonomy.
var ErrNotFound = store.ErrNotFound

// PatientService creates patients, appends medical-history entries and
// resolves patients with their owning doctor.
type PatientService struct {
	patients store.PatientStore
	doctors  store.DoctorStore
}

func NewPatientService(patients store.PatientStore, doctors store.DoctorStore) *PatientService {
	return &PatientService{patients: patients, doctors: doctors}
}

// Create persists a new patient owned by the given doctor. The owner always
// comes from the authenticated identity; a client-supplied doctor reference
// is never accepted. The history starts seeded with the submitted entry.
func (s *PatientService) Create(ctx context.Context, doctorID primitive.ObjectID, in validation.AddPatientInput) (*models.PatientWithDoctor, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Msg("create patient: owner lookup failed")
		return nil, err
	}

	date, err := validation.ParseDate(in.Date)
	if err != nil {
		// Validate already checked the format.
		return nil, fmt.Errorf("parse date: %w", err)
	}

	patient := &models.Patient{
		PatientName: in.PatientName,
		Age:         in.Age,
		DoctorID:    doctorID,
		MedicalHistory: []models.MedicalHistoryEntry{
			{
				Disease:     in.Disease,
				Medications: in.Medications,
				Description: in.Description,
				Date:        date,
			},
		},
	}
	if err := s.patients.Insert(ctx, patient); err != nil {
		log.Error().Err(err).Msg("create patient: insert failed")
		return nil, err
	}

	return &models.PatientWithDoctor{Patient: *patient, Doctor: doctor.Public()}, nil
}

// AppendRecord appends one history entry to the patient identified by idHex.
// The append is a single atomic array push in the store; missing patients
// surface as ErrNotFound before any field of the record is touched.
func (s *PatientService) AppendRecord(ctx context.Context, idHex string, in validation.HistoryEntryInput) (*models.Patient, error) {
	id, err := parsePatientID(idHex)
	if err != nil {
		return nil, err
	}
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs
	}

	date, err := validation.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	patient, err := s.patients.AppendHistory(ctx, id, models.MedicalHistoryEntry{
		Disease:     in.Disease,
		Medications: in.Medications,
		Description: in.Description,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("patientId", idHex).Msg("append record failed")
		return nil, err
	}
	return patient, nil
}

// ListByDoctor returns all patients owned by the doctor. An empty result is
// a success case; the handler adds the explanatory message.
func (s *PatientService) ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error) {
	patients, err := s.patients.FindByDoctor(ctx, doctorID)
	if err != nil {
		log.Error().Err(err).Msg("list patients failed")
		return nil, err
	}
	return patients, nil
}

// FindByID resolves a patient with its owning doctor's public fields.
func (s *PatientService) FindByID(ctx context.Context, idHex string) (*models.PatientWithDoctor, error) {
	id, err := parsePatientID(idHex)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("patientId", idHex).Msg("find patient failed")
		return nil, err
	}

	resolved := &models.PatientWithDoctor{Patient: *patient}
	doctor, err := s.doctors.FindByID(ctx, patient.DoctorID)
	switch {
	case err == nil:
		resolved.Doctor = doctor.Public()
	case errors.Is(err, store.ErrNotFound):
		// Owner record gone; the patient is still returned.
	default:
		log.Error().Err(err).Msg("find patient: owner lookup failed")
		return nil, err
	}
	return resolved, nil
}

func parsePatientID(idHex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, validation.Errors{{Field: "id", Message: "must be a valid patient id"}}
	}
	return id, nil
}
