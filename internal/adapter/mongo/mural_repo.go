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

const (
	muralCollectionName   = "mural_posts"
	commentCollectionName = "mural_comments"
)

type MuralMongoRepository struct {
	db *mongo.Database
}

func NewMuralMongoRepository(client *mongo.Client, dbName string) *MuralMongoRepository {
	return &MuralMongoRepository{db: client.Database(dbName)}
}

type muralPostDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AuthorName  string             `bson:"author_name"`
	AuthorEmail string             `bson:"author_email"`
	Text        string             `bson:"text"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toMuralPostEntity(doc *muralPostDocument) *entity.MuralPost {
	return &entity.MuralPost{
		ID:          doc.ID.Hex(),
		AuthorName:  doc.AuthorName,
		AuthorEmail: doc.AuthorEmail,
		Text:        doc.Text,
		ImageURL:    doc.ImageURL,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func (r *MuralMongoRepository) Create(ctx context.Context, post *entity.MuralPost) (string, error) {
	doc := muralPostDocument{
		AuthorName:  post.AuthorName,
		AuthorEmail: post.AuthorEmail,
		Text:        post.Text,
		ImageURL:    post.ImageURL,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}

	res, err := r.db.Collection(muralCollectionName).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create mural post in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *MuralMongoRepository) GetByID(ctx context.Context, id string) (*entity.MuralPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc muralPostDocument
	err = r.db.Collection(muralCollectionName).FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mural post by id from mongo: %w", err)
	}
	return toMuralPostEntity(&doc), nil
}

func (r *MuralMongoRepository) List(ctx context.Context, page, pageSize int) ([]*entity.MuralPost, int64, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if pageSize > 0 {
		if page <= 0 {
			page = 1
		}
		findOptions.SetSkip(int64((page - 1) * pageSize))
		findOptions.SetLimit(int64(pageSize))
	}

	cursor, err := r.db.Collection(muralCollectionName).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mural posts from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []muralPostDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode mural post list from mongo: %w", err)
	}

	posts := make([]*entity.MuralPost, len(docs))
	for i := range docs {
		posts[i] = toMuralPostEntity(&docs[i])
	}

	totalCount, err := r.db.Collection(muralCollectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count mural posts in mongo: %w", err)
	}
	return posts, totalCount, nil
}

func (r *MuralMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.Collection(muralCollectionName).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete mural post from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type CommentMongoRepository struct {
	db *mongo.Database
}

func NewCommentMongoRepository(client *mongo.Client, dbName string) *CommentMongoRepository {
	return &CommentMongoRepository{db: client.Database(dbName)}
}

type commentDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PostID      string             `bson:"post_id"`
	AuthorName  string             `bson:"author_name"`
	AuthorEmail string             `bson:"author_email"`
	Text        string             `bson:"text"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *CommentMongoRepository) Create(ctx context.Context, comment *entity.Comment) (string, error) {
	doc := commentDocument{
		PostID:      comment.PostID,
		AuthorName:  comment.AuthorName,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt,
	}

	res, err := r.db.Collection(commentCollectionName).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create comment in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *CommentMongoRepository) GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	// Comments read oldest-first so a thread reads top to bottom.
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection(commentCollectionName).Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []commentDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode comment list from mongo: %w", err)
	}

	comments := make([]*entity.Comment, len(docs))
	for i, doc := range docs {
		comments[i] = &entity.Comment{
			ID:          doc.ID.Hex(),
			PostID:      doc.PostID,
			AuthorName:  doc.AuthorName,
			AuthorEmail: doc.AuthorEmail,
			Text:        doc.Text,
			CreatedAt:   doc.CreatedAt,
		}
	}
	return comments, nil
}

func (r *CommentMongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.Collection(commentCollectionName).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete comment from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentMongoRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	res, err := r.db.Collection(commentCollectionName).DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments for post %s: %w", postID, err)
	}
	return res.DeletedCount, nil
}
