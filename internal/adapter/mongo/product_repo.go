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

const productCollectionName = "official_products"

type ProductMongoRepository struct {
	collection *mongo.Collection
}

func NewProductMongoRepository(client *mongo.Client, dbName string) *ProductMongoRepository {
	return &ProductMongoRepository{
		collection: client.Database(dbName).Collection(productCollectionName),
	}
}

type productDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     int64              `bson:"price"`
	Stock     int                `bson:"stock"`
	ImageURL  string             `bson:"image_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toProductEntity(doc *productDocument) *entity.OfficialProduct {
	return &entity.OfficialProduct{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Category:  doc.Category,
		Price:     doc.Price,
		Stock:     doc.Stock,
		ImageURL:  doc.ImageURL,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func (r *ProductMongoRepository) Create(ctx context.Context, product *entity.OfficialProduct) (string, error) {
	doc := productDocument{
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create product in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *ProductMongoRepository) GetByID(ctx context.Context, id string) (*entity.OfficialProduct, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc productDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id from mongo: %w", err)
	}
	return toProductEntity(&doc), nil
}

func (r *ProductMongoRepository) List(ctx context.Context) ([]*entity.OfficialProduct, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list products from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode product list from mongo: %w", err)
	}

	products := make([]*entity.OfficialProduct, len(docs))
	for i := range docs {
		products[i] = toProductEntity(&docs[i])
	}
	return products, nil
}

func (r *ProductMongoRepository) Update(ctx context.Context, product *entity.OfficialProduct) error {
	objID, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"name":       product.Name,
			"category":   product.Category,
			"price":      product.Price,
			"stock":      product.Stock,
			"image_url":  product.ImageURL,
			"updated_at": time.Now().UTC(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update product in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete product from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DecrementStock takes one unit with the stock guard inside the filter, so
// the last unit can only be taken once no matter how many sessions race.
func (r *ProductMongoRepository) DecrementStock(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	filter := bson.M{"_id": objID, "stock": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"stock": -1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		errFind := r.collection.FindOne(ctx, bson.M{"_id": objID}).Err()
		if errors.Is(errFind, mongo.ErrNoDocuments) {
			return repository.ErrNotFound
		}
		return repository.ErrOutOfStock
	}
	return nil
}

func (r *ProductMongoRepository) IncrementStock(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$inc": bson.M{"stock": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment stock for product %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
