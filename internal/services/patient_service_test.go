package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/models"
	"github.com/medicore/clinic-api/internal/store"
	"github.com/medicore/clinic-api/internal/validation"
)

func validAddPatientInput() validation.AddPatientInput {
	return validation.AddPatientInput{
		PatientName: "John Doe",
		Age:         42,
		HistoryEntryInput: validation.HistoryEntryInput{
			Disease:     "Hypertension",
			Medications: "Lisinopril 10mg",
			Description: "Routine checkup, elevated blood pressure",
			Date:        "2024-03-01",
		},
	}
}

func ownerStore(owner *models.Doctor) *MockDoctorStore {
	return &MockDoctorStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
			if id == owner.ID {
				return owner, nil
			}
			return nil, store.ErrNotFound
		},
	}
}

func TestCreatePatient_Success(t *testing.T) {
	owner := &models.Doctor{
		ID:            primitive.NewObjectID(),
		DoctorName:    "Dr. Grey",
		Email:         "grey@clinic.test",
		Password:      "hash",
		Qualification: "MBBS",
	}
	patients := &MockPatientStore{
		InsertFunc: func(ctx context.Context, patient *models.Patient) error {
			patient.ID = primitive.NewObjectID()
			return nil
		},
	}
	svc := NewPatientService(patients, ownerStore(owner))

	created, err := svc.Create(context.Background(), owner.ID, validAddPatientInput())
	require.NoError(t, err)

	assert.Equal(t, owner.ID, created.DoctorID, "owner must be the authenticated doctor")
	assert.Equal(t, "John Doe", created.PatientName)
	require.Len(t, created.MedicalHistory, 1)
	assert.Equal(t, "Hypertension", created.MedicalHistory[0].Disease)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), created.MedicalHistory[0].Date)

	assert.Equal(t, owner.DoctorName, created.Doctor.DoctorName)
	assert.Equal(t, owner.Email, created.Doctor.Email)
}

func TestCreatePatient_UnknownOwner(t *testing.T) {
	owner := &models.Doctor{ID: primitive.NewObjectID()}
	svc := NewPatientService(&MockPatientStore{}, ownerStore(owner))

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), validAddPatientInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePatient_ValidationFailures(t *testing.T) {
	owner := &models.Doctor{ID: primitive.NewObjectID()}
	svc := NewPatientService(&MockPatientStore{}, ownerStore(owner))

	cases := []struct {
		name   string
		mutate func(*validation.AddPatientInput)
		field  string
	}{
		{"missing name", func(in *validation.AddPatientInput) { in.PatientName = "" }, "patientName"},
		{"zero age", func(in *validation.AddPatientInput) { in.Age = 0 }, "age"},
		{"negative age", func(in *validation.AddPatientInput) { in.Age = -3 }, "age"},
		{"missing disease", func(in *validation.AddPatientInput) { in.Disease = "" }, "disease"},
		{"bad date", func(in *validation.AddPatientInput) { in.Date = "last tuesday" }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validAddPatientInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), owner.ID, in)
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestAppendRecord_Success(t *testing.T) {
	patientID := primitive.NewObjectID()
	existing := models.MedicalHistoryEntry{Disease: "Flu", Medications: "Rest", Description: "Seasonal", Date: time.Now()}
	patients := &MockPatientStore{
		AppendHistoryFunc: func(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error) {
			require.Equal(t, patientID, id)
			return &models.Patient{
				ID:             patientID,
				PatientName:    "John Doe",
				MedicalHistory: []models.MedicalHistoryEntry{existing, entry},
			}, nil
		},
	}
	svc := NewPatientService(patients, &MockDoctorStore{})

	updated, err := svc.AppendRecord(context.Background(), patientID.Hex(), validation.HistoryEntryInput{
		Disease:     "Hypertension",
		Medications: "Lisinopril 10mg",
		Description: "Follow-up",
		Date:        "2024-04-01",
	})
	require.NoError(t, err)

	require.Len(t, updated.MedicalHistory, 2)
	assert.Equal(t, "Hypertension", updated.MedicalHistory[1].Disease, "new entry appended at the end")
	assert.Equal(t, 1, patients.AppendHistoryCalls, "append must be a single store operation")
}

func TestAppendRecord_MalformedID(t *testing.T) {
	patients := &MockPatientStore{}
	svc := NewPatientService(patients, &MockDoctorStore{})

	_, err := svc.AppendRecord(context.Background(), "not-an-object-id", validation.HistoryEntryInput{
		Disease: "x", Medications: "y", Description: "z", Date: "2024-04-01",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "id", verrs[0].Field)
	assert.Zero(t, patients.AppendHistoryCalls, "malformed id must not reach the store")
}

func TestAppendRecord_PatientNotFound(t *testing.T) {
	patients := &MockPatientStore{
		AppendHistoryFunc: func(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewPatientService(patients, &MockDoctorStore{})

	_, err := svc.AppendRecord(context.Background(), primitive.NewObjectID().Hex(), validation.HistoryEntryInput{
		Disease: "x", Medications: "y", Description: "z", Date: "2024-04-01",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByDoctor_EmptyIsSuccess(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patients := &MockPatientStore{
		FindByDoctorFunc: func(ctx context.Context, id primitive.ObjectID) ([]models.Patient, error) {
			return nil, nil
		},
	}
	svc := NewPatientService(patients, &MockDoctorStore{})

	list, err := svc.ListByDoctor(context.Background(), doctorID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindByID_PopulatesOwner(t *testing.T) {
	owner := &models.Doctor{
		ID:            primitive.NewObjectID(),
		DoctorName:    "Dr. Grey",
		Email:         "grey@clinic.test",
		Qualification: "MBBS",
	}
	patientID := primitive.NewObjectID()
	patients := &MockPatientStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
			if id == patientID {
				return &models.Patient{ID: patientID, PatientName: "John Doe", DoctorID: owner.ID}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	svc := NewPatientService(patients, ownerStore(owner))

	found, err := svc.FindByID(context.Background(), patientID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.PatientName)
	assert.Equal(t, "Dr. Grey", found.Doctor.DoctorName)
}

func TestFindByID_MalformedID(t *testing.T) {
	svc := NewPatientService(&MockPatientStore{}, &MockDoctorStore{})

	_, err := svc.FindByID(context.Background(), "zzz")
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "id", verrs[0].Field)
}

func TestFindByID_NotFound(t *testing.T) {
	patients := &MockPatientStore{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewPatientService(patients, &MockDoctorStore{})

	_, err := svc.FindByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
