package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medicore/clinic-api/internal/models"
)

const doctorsCollection = "doctors"

type MongoDoctorStore struct {
	coll *mongo.Collection
}

func NewMongoDoctorStore(db *mongo.Database) *MongoDoctorStore {
	return &MongoDoctorStore{coll: db.Collection(doctorsCollection)}
}

// EnsureIndexes creates the unique indexes on email and doctorName. The
// registration race (check-then-insert) is closed here: a concurrent
// duplicate insert fails with a duplicate-key error instead of succeeding.
func (s *MongoDoctorStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "doctorName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create doctor indexes: %w", err)
	}
	return nil
}

func (s *MongoDoctorStore) Insert(ctx context.Context, doctor *models.Doctor) error {
	now := time.Now().UTC()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	res, err := s.coll.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert doctor: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = id
	}
	return nil
}

func (s *MongoDoctorStore) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor by email: %w", err)
	}
	return &doctor, nil
}

func (s *MongoDoctorStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor by id: %w", err)
	}
	return &doctor, nil
}
