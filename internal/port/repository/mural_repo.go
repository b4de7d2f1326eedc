package repository

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

type MuralRepository interface {
	Create(ctx context.Context, post *entity.MuralPost) (string, error)
	GetByID(ctx context.Context, id string) (*entity.MuralPost, error)
	List(ctx context.Context, page, pageSize int) ([]*entity.MuralPost, int64, error)
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) (string, error)
	GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}

// LikeRepository stores one document per (post, actor) pair, so each actor's
// like state is tracked individually rather than as a bare counter.
type LikeRepository interface {
	AddLike(ctx context.Context, postID, actorEmail string) error
	RemoveLike(ctx context.Context, postID, actorEmail string) error
	CountByPost(ctx context.Context, postID string) (int64, error)
	HasLiked(ctx context.Context, postID, actorEmail string) (bool, error)
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}
