package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const petCollectionName = "pet_listings"

type PetMongoRepository struct {
	collection *mongo.Collection
}

func NewPetMongoRepository(client *mongo.Client, dbName string) *PetMongoRepository {
	return &PetMongoRepository{
		collection: client.Database(dbName).Collection(petCollectionName),
	}
}

type petDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerEmail  string             `bson:"owner_email"`
	Name        string             `bson:"name"`
	Species     string             `bson:"species"`
	Breed       string             `bson:"breed,omitempty"`
	Age         string             `bson:"age,omitempty"`
	Story       string             `bson:"story,omitempty"`
	HealthNotes string             `bson:"health_notes,omitempty"`
	Mode        string             `bson:"mode"`
	Status      string             `bson:"status"`
	Photos      []string           `bson:"photos"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	Version     int                `bson:"version"`
}

func toPetEntity(doc *petDocument) *entity.PetListing {
	return &entity.PetListing{
		ID:          doc.ID.Hex(),
		OwnerEmail:  doc.OwnerEmail,
		Name:        doc.Name,
		Species:     doc.Species,
		Breed:       doc.Breed,
		Age:         doc.Age,
		Story:       doc.Story,
		HealthNotes: doc.HealthNotes,
		Mode:        entity.PetMode(doc.Mode),
		Status:      entity.ApprovalStatus(doc.Status),
		Photos:      doc.Photos,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Version:     doc.Version,
	}
}

func (r *PetMongoRepository) Create(ctx context.Context, pet *entity.PetListing) (string, error) {
	doc := petDocument{
		OwnerEmail:  pet.OwnerEmail,
		Name:        pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		Age:         pet.Age,
		Story:       pet.Story,
		HealthNotes: pet.HealthNotes,
		Mode:        string(pet.Mode),
		Status:      string(pet.Status),
		Photos:      pet.Photos,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
		Version:     pet.Version,
	}
	if doc.Photos == nil {
		doc.Photos = []string{}
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create pet listing in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *PetMongoRepository) GetByID(ctx context.Context, id string) (*entity.PetListing, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc petDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet listing by id from mongo: %w", err)
	}
	return toPetEntity(&doc), nil
}

func (r *PetMongoRepository) List(ctx context.Context, params repository.ListPetsParams) ([]*entity.PetListing, int64, error) {
	filter := bson.M{}
	if params.OwnerEmail != "" {
		filter["owner_email"] = params.OwnerEmail
	}
	if params.Mode != "" {
		filter["mode"] = string(params.Mode)
	}
	if params.Status != "" {
		filter["status"] = string(params.Status)
	}
	if params.Species != "" {
		filter["species"] = params.Species
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if params.PageSize > 0 {
		page := params.Page
		if page <= 0 {
			page = 1
		}
		findOptions.SetSkip(int64((page - 1) * params.PageSize))
		findOptions.SetLimit(int64(params.PageSize))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pet listings from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []petDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode pet listing list from mongo: %w", err)
	}

	pets := make([]*entity.PetListing, len(docs))
	for i := range docs {
		pets[i] = toPetEntity(&docs[i])
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pet listings in mongo: %w", err)
	}
	return pets, totalCount, nil
}

func (r *PetMongoRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	filter := bson.M{"_id": objID, "version": version}
	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update pet listing status for ID %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		var existing petDocument
		errFind := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
		if errors.Is(errFind, mongo.ErrNoDocuments) {
			return repository.ErrNotFound
		}
		if errFind == nil && existing.Version != version {
			return repository.ErrOptimisticLock
		}
		return repository.ErrUpdateFailed
	}
	return nil
}

func (r *PetMongoRepository) AddPhoto(ctx context.Context, id string, photoURL string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$push": bson.M{"photos": photoURL},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to add photo to pet listing %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PetMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete pet listing from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
