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

const patientsCollection = "patients"

type MongoPatientStore struct {
	coll *mongo.Collection
}

func NewMongoPatientStore(db *mongo.Database) *MongoPatientStore {
	return &MongoPatientStore{coll: db.Collection(patientsCollection)}
}

// EnsureIndexes creates the lookup index used by FindByDoctor.
func (s *MongoPatientStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "doctorId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}
	return nil
}

func (s *MongoPatientStore) Insert(ctx context.Context, patient *models.Patient) error {
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	if patient.MedicalHistory == nil {
		patient.MedicalHistory = []models.MedicalHistoryEntry{}
	}
	res, err := s.coll.InsertOne(ctx, patient)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		patient.ID = id
	}
	return nil
}

func (s *MongoPatientStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	var patient models.Patient
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find patient by id: %w", err)
	}
	return &patient, nil
}

func (s *MongoPatientStore) FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Patient, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"doctorId": doctorID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find patients by doctor: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

// AppendHistory pushes one entry onto the patient's medicalHistory array in a
// single update keyed by id. Concurrent appends to the same patient cannot
// lose entries; the document is returned as it stands after the push.
func (s *MongoPatientStore) AppendHistory(ctx context.Context, id primitive.ObjectID, entry models.MedicalHistoryEntry) (*models.Patient, error) {
	update := bson.M{
		"$push": bson.M{"medicalHistory": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var patient models.Patient
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return &patient, nil
}
