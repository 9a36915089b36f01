package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicalHistoryEntry is one appended clinical note. Entries are embedded in
// the patient document, appended in chronological order and never edited or
// removed. The date is a typed value; free-form date strings are rejected at
// validation time.
type MedicalHistoryEntry struct {
	Disease     string    `bson:"disease" json:"disease"`
	Medications string    `bson:"medications" json:"medications"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
}

// Patient belongs to exactly one doctor, assigned at creation from the
// authenticated identity. The only mutation is appending to MedicalHistory.
type Patient struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	PatientName    string                `bson:"patientName" json:"patientName"`
	Age            int                   `bson:"age" json:"age"`
	MedicalHistory []MedicalHistoryEntry `bson:"medicalHistory" json:"medicalHistory"`
	DoctorID       primitive.ObjectID    `bson:"doctorId" json:"doctorId"`
	CreatedAt      time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// PatientWithDoctor is a patient resolved with its owner's public fields.
type PatientWithDoctor struct {
	Patient
	Doctor PublicDoctor `json:"doctor"`
}
