package mongo

import (
	"context"
	"fmt"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const likeCollectionName = "mural_likes"

type LikeMongoRepository struct {
	db *mongo.Database
}

func NewLikeMongoRepository(client *mongo.Client, dbName string) *LikeMongoRepository {
	return &LikeMongoRepository{db: client.Database(dbName)}
}

type likeDocument struct {
	PostID     string `bson:"post_id"`
	ActorEmail string `bson:"actor_email"`
}

// AddLike upserts, so liking twice is a no-op rather than a duplicate.
func (r *LikeMongoRepository) AddLike(ctx context.Context, postID, actorEmail string) error {
	doc := likeDocument{PostID: postID, ActorEmail: actorEmail}
	filter := bson.M{"post_id": postID, "actor_email": actorEmail}

	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection(likeCollectionName).UpdateOne(ctx, filter, bson.M{"$setOnInsert": doc}, opts)
	if err != nil {
		return fmt.Errorf("failed to add like in mongo: %w", err)
	}
	return nil
}

func (r *LikeMongoRepository) RemoveLike(ctx context.Context, postID, actorEmail string) error {
	filter := bson.M{"post_id": postID, "actor_email": actorEmail}
	res, err := r.db.Collection(likeCollectionName).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to remove like from mongo: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LikeMongoRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	count, err := r.db.Collection(likeCollectionName).CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes in mongo: %w", err)
	}
	return count, nil
}

func (r *LikeMongoRepository) HasLiked(ctx context.Context, postID, actorEmail string) (bool, error) {
	filter := bson.M{"post_id": postID, "actor_email": actorEmail}
	count, err := r.db.Collection(likeCollectionName).CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check like in mongo: %w", err)
	}
	return count > 0, nil
}

func (r *LikeMongoRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	res, err := r.db.Collection(likeCollectionName).DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete likes for post %s: %w", postID, err)
	}
	return res.DeletedCount, nil
}
