package usecase

import (
	"context"
	"fmt"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

// MuralPostView is a post decorated with its like state for the viewer.
type MuralPostView struct {
	Post     *entity.MuralPost `json:"post"`
	Likes    int64             `json:"likes"`
	HasLiked bool              `json:"hasLiked"`
}

// MuralUsecase is the community feed: posts, ordered comments and per-actor
// likes.
type MuralUsecase struct {
	muralRepo   repository.MuralRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	storage     FileStorage
	log         logger.Logger
}

func NewMuralUsecase(
	muralRepo repository.MuralRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	storage FileStorage,
	log logger.Logger,
) *MuralUsecase {
	return &MuralUsecase{
		muralRepo:   muralRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		storage:     storage,
		log:         log,
	}
}

type CreatePostInput struct {
	AuthorName  string
	AuthorEmail string
	Text        string
	Photo       []byte
	PhotoName   string
}

func (uc *MuralUsecase) CreatePost(ctx context.Context, input CreatePostInput) (*entity.MuralPost, error) {
	imageURL := ""
	if len(input.Photo) > 0 {
		if uc.storage == nil {
			return nil, fmt.Errorf("%w: photo uploads are not configured", ErrValidation)
		}
		url, err := uc.storage.Upload(ctx, input.PhotoName, input.Photo)
		if err != nil {
			return nil, fmt.Errorf("MuralUsecase.CreatePost: photo upload: %w", err)
		}
		imageURL = url
	}

	post, err := entity.NewMuralPost(input.AuthorName, input.AuthorEmail, input.Text, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	createdID, err := uc.muralRepo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("MuralUsecase.CreatePost: %w", err)
	}
	post.ID = createdID

	uc.log.Infof("Mural post %s created by %s", post.ID, post.AuthorEmail)
	return post, nil
}

// ListPosts returns the feed newest first, each post carrying its like count
// and, when a viewer is known, whether that viewer has liked it.
func (uc *MuralUsecase) ListPosts(ctx context.Context, viewerEmail string, page, pageSize int) ([]*MuralPostView, int64, error) {
	posts, total, err := uc.muralRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("MuralUsecase.ListPosts: %w", err)
	}

	views := make([]*MuralPostView, 0, len(posts))
	for _, post := range posts {
		view := &MuralPostView{Post: post}
		if count, err := uc.likeRepo.CountByPost(ctx, post.ID); err == nil {
			view.Likes = count
		} else {
			uc.log.Warnf("Failed to count likes for post %s: %v", post.ID, err)
		}
		if viewerEmail != "" {
			if liked, err := uc.likeRepo.HasLiked(ctx, post.ID, viewerEmail); err == nil {
				view.HasLiked = liked
			}
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (uc *MuralUsecase) AddComment(ctx context.Context, postID, authorName, authorEmail, text string) (*entity.Comment, error) {
	if _, err := uc.muralRepo.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("MuralUsecase.AddComment: %w", err)
	}

	comment, err := entity.NewComment(postID, authorName, authorEmail, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	createdID, err := uc.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("MuralUsecase.AddComment: %w", err)
	}
	comment.ID = createdID
	return comment, nil
}

// ListComments returns a post's comments oldest first.
func (uc *MuralUsecase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("MuralUsecase.ListComments: %w", err)
	}
	return comments, nil
}

// Like records the actor's like. Liking twice is a no-op, not an error.
func (uc *MuralUsecase) Like(ctx context.Context, postID, actorEmail string) (int64, error) {
	if _, err := uc.muralRepo.GetByID(ctx, postID); err != nil {
		return 0, fmt.Errorf("MuralUsecase.Like: %w", err)
	}
	if err := uc.likeRepo.AddLike(ctx, postID, actorEmail); err != nil {
		return 0, fmt.Errorf("MuralUsecase.Like: %w", err)
	}
	count, err := uc.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("MuralUsecase.Like: %w", err)
	}
	return count, nil
}

// Unlike removes the actor's like; removing an absent like is a no-op.
func (uc *MuralUsecase) Unlike(ctx context.Context, postID, actorEmail string) (int64, error) {
	if err := uc.likeRepo.RemoveLike(ctx, postID, actorEmail); err != nil {
		return 0, fmt.Errorf("MuralUsecase.Unlike: %w", err)
	}
	count, err := uc.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("MuralUsecase.Unlike: %w", err)
	}
	return count, nil
}

// DeletePost removes a post with its comments and likes. Only the author or
// an admin may do so.
func (uc *MuralUsecase) DeletePost(ctx context.Context, postID, requesterEmail string, isAdmin bool) error {
	post, err := uc.muralRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("MuralUsecase.DeletePost: %w", err)
	}
	if !isAdmin && post.AuthorEmail != requesterEmail {
		return fmt.Errorf("%w: only the author or an admin can delete a post", ErrForbidden)
	}

	if err := uc.muralRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("MuralUsecase.DeletePost: %w", err)
	}
	if _, err := uc.commentRepo.DeleteByPostID(ctx, postID); err != nil {
		uc.log.Warnf("Failed to delete comments for post %s: %v", postID, err)
	}
	if _, err := uc.likeRepo.DeleteByPostID(ctx, postID); err != nil {
		uc.log.Warnf("Failed to delete likes for post %s: %v", postID, err)
	}

	uc.log.Infof("Mural post %s deleted by %s", postID, requesterEmail)
	return nil
}
