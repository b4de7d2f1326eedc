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

const requestCollectionName = "requests"

type RequestMongoRepository struct {
	collection *mongo.Collection
}

func NewRequestMongoRepository(client *mongo.Client, dbName string) *RequestMongoRepository {
	return &RequestMongoRepository{
		collection: client.Database(dbName).Collection(requestCollectionName),
	}
}

type requestDocument struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Kind         string               `bson:"kind"`
	SubjectRef   string               `bson:"subject_ref"`
	SubjectName  string               `bson:"subject_name"`
	SubjectImage string               `bson:"subject_image,omitempty"`
	ActorName    string               `bson:"actor_name"`
	ActorEmail   string               `bson:"actor_email"`
	Message      string               `bson:"message"`
	Status       string               `bson:"status"`
	Visit        *entity.VisitDetails `bson:"visit,omitempty"`
	RelatedID    string               `bson:"related_id,omitempty"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func toRequestDocument(req *entity.Request) (*requestDocument, error) {
	doc := &requestDocument{
		Kind:         string(req.Kind),
		SubjectRef:   req.SubjectRef,
		SubjectName:  req.SubjectName,
		SubjectImage: req.SubjectImage,
		ActorName:    req.ActorName,
		ActorEmail:   req.ActorEmail,
		Message:      req.Message,
		Status:       string(req.Status),
		Visit:        req.Visit,
		RelatedID:    req.RelatedID,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
	if req.ID != "" {
		objID, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid request ID format: %w", err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toRequestEntity(doc *requestDocument) *entity.Request {
	return &entity.Request{
		ID:           doc.ID.Hex(),
		Kind:         entity.RequestKind(doc.Kind),
		SubjectRef:   doc.SubjectRef,
		SubjectName:  doc.SubjectName,
		SubjectImage: doc.SubjectImage,
		ActorName:    doc.ActorName,
		ActorEmail:   doc.ActorEmail,
		Message:      doc.Message,
		Status:       entity.RequestStatus(doc.Status),
		Visit:        doc.Visit,
		RelatedID:    doc.RelatedID,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func (r *RequestMongoRepository) Create(ctx context.Context, req *entity.Request) (string, error) {
	doc, err := toRequestDocument(req)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create request in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *RequestMongoRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc requestDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request by id from mongo: %w", err)
	}
	return toRequestEntity(&doc), nil
}

func (r *RequestMongoRepository) List(ctx context.Context, params repository.ListRequestsParams) ([]*entity.Request, int64, error) {
	filter := bson.M{}
	if params.ActorEmail != "" {
		filter["actor_email"] = params.ActorEmail
	}
	if params.Kind != "" {
		filter["kind"] = string(params.Kind)
	}
	if params.Status != "" {
		filter["status"] = string(params.Status)
	}

	// Most recent first; ObjectID as tiebreak keeps insertion order stable
	// for identical timestamps.
	findOptions := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
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
		return nil, 0, fmt.Errorf("failed to list requests from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []requestDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode request list from mongo: %w", err)
	}

	requests := make([]*entity.Request, len(docs))
	for i := range docs {
		requests[i] = toRequestEntity(&docs[i])
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests in mongo: %w", err)
	}
	return requests, totalCount, nil
}

func (r *RequestMongoRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update request status in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RequestMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete request from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
