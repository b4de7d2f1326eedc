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

const actorCollectionName = "actors"

type ActorMongoRepository struct {
	collection *mongo.Collection
}

func NewActorMongoRepository(client *mongo.Client, dbName string) *ActorMongoRepository {
	collection := client.Database(dbName).Collection(actorCollectionName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &ActorMongoRepository{collection: collection}
}

type partnerProfileDocument struct {
	CompanyName string `bson:"company_name"`
	Description string `bson:"description,omitempty"`
	Website     string `bson:"website,omitempty"`
	LogoURL     string `bson:"logo_url,omitempty"`
}

type actorDocument struct {
	ID             primitive.ObjectID      `bson:"_id,omitempty"`
	Name           string                  `bson:"name"`
	Email          string                  `bson:"email"`
	Password       string                  `bson:"password"`
	Role           string                  `bson:"role"`
	Status         string                  `bson:"status"`
	Balance        int64                   `bson:"balance"`
	PartnerProfile *partnerProfileDocument `bson:"partner_profile,omitempty"`
	CreatedAt      time.Time               `bson:"created_at"`
	UpdatedAt      time.Time               `bson:"updated_at"`
	Version        int                     `bson:"version"`
}

func toActorDocument(a *entity.Actor) (*actorDocument, error) {
	doc := &actorDocument{
		Name:      a.Name,
		Email:     a.Email,
		Password:  a.Password,
		Role:      string(a.Role),
		Status:    string(a.Status),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Version:   a.Version,
	}
	if a.PartnerProfile != nil {
		doc.PartnerProfile = &partnerProfileDocument{
			CompanyName: a.PartnerProfile.CompanyName,
			Description: a.PartnerProfile.Description,
			Website:     a.PartnerProfile.Website,
			LogoURL:     a.PartnerProfile.LogoURL,
		}
	}
	if a.ID != "" {
		objID, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID format: %w", err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toActorEntity(doc *actorDocument) *entity.Actor {
	a := &entity.Actor{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Password:  doc.Password,
		Role:      entity.ActorRole(doc.Role),
		Status:    entity.ApprovalStatus(doc.Status),
		Balance:   doc.Balance,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		Version:   doc.Version,
	}
	if doc.PartnerProfile != nil {
		a.PartnerProfile = &entity.PartnerProfile{
			CompanyName: doc.PartnerProfile.CompanyName,
			Description: doc.PartnerProfile.Description,
			Website:     doc.PartnerProfile.Website,
			LogoURL:     doc.PartnerProfile.LogoURL,
		}
	}
	return a
}

func (r *ActorMongoRepository) Create(ctx context.Context, actor *entity.Actor) (string, error) {
	doc, err := toActorDocument(actor)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create actor in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *ActorMongoRepository) GetByID(ctx context.Context, id string) (*entity.Actor, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc actorDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get actor by id from mongo: %w", err)
	}
	return toActorEntity(&doc), nil
}

func (r *ActorMongoRepository) GetByEmail(ctx context.Context, email string) (*entity.Actor, error) {
	var doc actorDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get actor by email from mongo: %w", err)
	}
	return toActorEntity(&doc), nil
}

func (r *ActorMongoRepository) List(ctx context.Context, params repository.ListActorsParams) ([]*entity.Actor, int64, error) {
	filter := bson.M{}
	if params.Role != "" {
		filter["role"] = string(params.Role)
	}
	if params.Status != "" {
		filter["status"] = string(params.Status)
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
		return nil, 0, fmt.Errorf("failed to list actors from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []actorDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode actor list from mongo: %w", err)
	}

	actors := make([]*entity.Actor, len(docs))
	for i := range docs {
		actors[i] = toActorEntity(&docs[i])
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count actors in mongo: %w", err)
	}
	return actors, totalCount, nil
}

func (r *ActorMongoRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
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
		return fmt.Errorf("failed to update actor status for ID %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		var existing actorDocument
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

// AdjustBalance is the single write path for PetCoin balances. The filter
// carries the non-negativity guard, so the debit check and the decrement are
// one storage-level operation and concurrent debits cannot overdraw.
func (r *ActorMongoRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrNotFound
	}

	filter := bson.M{"_id": objID}
	if delta < 0 {
		filter["balance"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"balance": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc actorDocument
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the actor does not exist or the balance guard failed.
			countErr := r.collection.FindOne(ctx, bson.M{"_id": objID}).Err()
			if errors.Is(countErr, mongo.ErrNoDocuments) {
				return 0, repository.ErrNotFound
			}
			return 0, repository.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to adjust balance for actor %s: %w", id, err)
	}
	return doc.Balance, nil
}

func (r *ActorMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete actor from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
