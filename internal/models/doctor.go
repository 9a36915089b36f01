package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is the authenticated actor owning patient records. Records are
// immutable after registration; there is no update or delete path.
type Doctor struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorName    string             `bson:"doctorName" json:"doctorName"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Qualification string             `bson:"qualification" json:"qualification"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicDoctor is the owner view embedded in patient responses.
type PublicDoctor struct {
	ID            primitive.ObjectID `json:"id"`
	DoctorName    string             `json:"doctorName"`
	Email         string             `json:"email"`
	Qualification string             `json:"qualification"`
}

// Public strips the credential fields.
func (d *Doctor) Public() PublicDoctor {
	return PublicDoctor{
		ID:            d.ID,
		DoctorName:    d.DoctorName,
		Email:         d.Email,
		Qualification: d.Qualification,
	}
}
