package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/clinic-api/internal/models"
	"github.com/medicore/clinic-api/internal/store"
)

// Compile-time checks that the mocks satisfy the store contracts.
var (
	_ store.DoctorStore  = (*MockDoctorStore)(nil)
	_ store.PatientStore = (*MockPatientStore)(nil)
)

// MockDoctorStore is a hand-rolled DoctorStore with overridable behavior.
type MockDoctorStore struct {
	InsertFunc      func(ctx context.Context, doctor *models.Doctor) error
	FindByEmailFunc func(ctx context.Context, email string) (*models.Doctor, error)
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)

	InsertCalls int
}

func (m *MockDoctorStore) Insert(ctx context.Context, doctor *models.Doctor) error {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorStore) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockDoctorStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// MockPatientStore is a hand-rolled PatientStore with overridable behavior.
type MockPatientStore struct {
	InsertFunc        func(ctx context.Context, patient *models.Patient) error
	FindByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindByDoctorFunc  func(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error)
	AppendHistoryFunc func(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error)

	AppendHistoryCalls int
}

func (m *MockPatientStore) Insert(ctx context.Context, patient *models.Patient) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientStore) FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error) {
	if m.FindByDoctorFunc != nil {
		return m.FindByDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("FindByDoctorFunc not implemented in mock")
}

func (m *MockPatientStore) AppendHistory(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error) {
	m.AppendHistoryCalls++
	if m.AppendHistoryFunc != nil {
		return m.AppendHistoryFunc(ctx, id, entry)
	}
	return nil, errors.New("AppendHistoryFunc not implemented in mock")
}
