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

const garageCollectionName = "garage_items"

type GarageMongoRepository struct {
	collection *mongo.Collection
}

func NewGarageMongoRepository(client *mongo.Client, dbName string) *GarageMongoRepository {
	return &GarageMongoRepository{
		collection: client.Database(dbName).Collection(garageCollectionName),
	}
}

type garageItemDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SellerEmail string             `bson:"seller_email"`
	Name        string             `bson:"name"`
	Price       int64              `bson:"price"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	Version     int                `bson:"version"`
}

func toGarageItemEntity(doc *garageItemDocument) *entity.GarageItem {
	return &entity.GarageItem{
		ID:          doc.ID.Hex(),
		SellerEmail: doc.SellerEmail,
		Name:        doc.Name,
		Price:       doc.Price,
		ImageURL:    doc.ImageURL,
		Status:      entity.ApprovalStatus(doc.Status),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Version:     doc.Version,
	}
}

func (r *GarageMongoRepository) Create(ctx context.Context, item *entity.GarageItem) (string, error) {
	doc := garageItemDocument{
		SellerEmail: item.SellerEmail,
		Name:        item.Name,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		Version:     item.Version,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create garage item in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *GarageMongoRepository) GetByID(ctx context.Context, id string) (*entity.GarageItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc garageItemDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get garage item by id from mongo: %w", err)
	}
	return toGarageItemEntity(&doc), nil
}

func (r *GarageMongoRepository) listByFilter(ctx context.Context, filter bson.M) ([]*entity.GarageItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list garage items from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []garageItemDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode garage item list from mongo: %w", err)
	}

	items := make([]*entity.GarageItem, len(docs))
	for i := range docs {
		items[i] = toGarageItemEntity(&docs[i])
	}
	return items, nil
}

func (r *GarageMongoRepository) ListByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.GarageItem, error) {
	return r.listByFilter(ctx, bson.M{"status": string(status)})
}

func (r *GarageMongoRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.GarageItem, error) {
	return r.listByFilter(ctx, bson.M{"seller_email": sellerEmail})
}

func (r *GarageMongoRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
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
		return fmt.Errorf("failed to update garage item status for ID %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		var existing garageItemDocument
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

func (r *GarageMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete garage item from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
