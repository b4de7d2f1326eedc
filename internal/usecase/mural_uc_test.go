package usecase

import (
	"context"
	"testing"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMuralFixture(t *testing.T) (*MuralUsecase, *MockMuralRepository, *MockCommentRepository, *MockLikeRepository, *MockFileStorage) {
	mockPosts := new(MockMuralRepository)
	mockComments := new(MockCommentRepository)
	mockLikes := new(MockLikeRepository)
	mockStorage := new(MockFileStorage)
	uc := NewMuralUsecase(mockPosts, mockComments, mockLikes, mockStorage, testLogger(t))
	return uc, mockPosts, mockComments, mockLikes, mockStorage
}

func TestMuralUsecase_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("TextOnly", func(t *testing.T) {
		uc, mockPosts, _, _, _ := newMuralFixture(t)

		mockPosts.On("Create", ctx, mock.AnythingOfType("*entity.MuralPost")).Return("post1", nil).Once()

		post, err := uc.CreatePost(ctx, CreatePostInput{
			AuthorName:  "Ana",
			AuthorEmail: "ana@example.com",
			Text:        "Rex found a home today!",
		})

		assert.NoError(t, err)
		assert.Equal(t, "post1", post.ID)
	})

	t.Run("PhotoUploaded", func(t *testing.T) {
		uc, mockPosts, _, _, mockStorage := newMuralFixture(t)

		mockStorage.On("Upload", ctx, "rex.jpg", []byte{0x1}).Return("https://cdn/rex.jpg", nil).Once()
		mockPosts.On("Create", ctx, mock.MatchedBy(func(p *entity.MuralPost) bool {
			return p.ImageURL == "https://cdn/rex.jpg"
		})).Return("post2", nil).Once()

		post, err := uc.CreatePost(ctx, CreatePostInput{
			AuthorEmail: "ana@example.com",
			Photo:       []byte{0x1},
			PhotoName:   "rex.jpg",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/rex.jpg", post.ImageURL)
	})

	t.Run("EmptyPostRejected", func(t *testing.T) {
		uc, mockPosts, _, _, _ := newMuralFixture(t)

		_, err := uc.CreatePost(ctx, CreatePostInput{AuthorEmail: "ana@example.com"})

		assert.ErrorIs(t, err, ErrValidation)
		mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMuralUsecase_ListPosts(t *testing.T) {
	ctx := context.Background()
	uc, mockPosts, _, mockLikes, _ := newMuralFixture(t)

	posts := []*entity.MuralPost{{ID: "post1"}, {ID: "post2"}}
	mockPosts.On("List", ctx, 1, 20).Return(posts, int64(2), nil).Once()
	mockLikes.On("CountByPost", ctx, "post1").Return(int64(3), nil).Once()
	mockLikes.On("CountByPost", ctx, "post2").Return(int64(0), nil).Once()
	mockLikes.On("HasLiked", ctx, "post1", "ana@example.com").Return(true, nil).Once()
	mockLikes.On("HasLiked", ctx, "post2", "ana@example.com").Return(false, nil).Once()

	views, total, err := uc.ListPosts(ctx, "ana@example.com", 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, views, 2)
	assert.Equal(t, int64(3), views[0].Likes)
	assert.True(t, views[0].HasLiked)
	assert.False(t, views[1].HasLiked)
}

func TestMuralUsecase_Likes(t *testing.T) {
	ctx := context.Background()
	post := &entity.MuralPost{ID: "post1", AuthorEmail: "ana@example.com"}

	t.Run("LikeReturnsCount", func(t *testing.T) {
		uc, mockPosts, _, mockLikes, _ := newMuralFixture(t)

		mockPosts.On("GetByID", ctx, "post1").Return(post, nil).Once()
		mockLikes.On("AddLike", ctx, "post1", "bruno@example.com").Return(nil).Once()
		mockLikes.On("CountByPost", ctx, "post1").Return(int64(4), nil).Once()

		count, err := uc.Like(ctx, "post1", "bruno@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("DoubleLikeDoesNotError", func(t *testing.T) {
		uc, mockPosts, _, mockLikes, _ := newMuralFixture(t)

		mockPosts.On("GetByID", ctx, "post1").Return(post, nil).Twice()
		mockLikes.On("AddLike", ctx, "post1", "bruno@example.com").Return(nil).Twice()
		mockLikes.On("CountByPost", ctx, "post1").Return(int64(4), nil).Twice()

		_, err := uc.Like(ctx, "post1", "bruno@example.com")
		assert.NoError(t, err)
		count, err := uc.Like(ctx, "post1", "bruno@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("UnlikeAbsentLikeIsNoop", func(t *testing.T) {
		uc, _, _, mockLikes, _ := newMuralFixture(t)

		mockLikes.On("RemoveLike", ctx, "post1", "bruno@example.com").Return(nil).Once()
		mockLikes.On("CountByPost", ctx, "post1").Return(int64(3), nil).Once()

		count, err := uc.Unlike(ctx, "post1", "bruno@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestMuralUsecase_DeletePost(t *testing.T) {
	ctx := context.Background()
	post := &entity.MuralPost{ID: "post1", AuthorEmail: "ana@example.com"}

	t.Run("AuthorDeletesWithCascade", func(t *testing.T) {
		uc, mockPosts, mockComments, mockLikes, _ := newMuralFixture(t)

		mockPosts.On("GetByID", ctx, "post1").Return(post, nil).Once()
		mockPosts.On("Delete", ctx, "post1").Return(nil).Once()
		mockComments.On("DeleteByPostID", ctx, "post1").Return(int64(2), nil).Once()
		mockLikes.On("DeleteByPostID", ctx, "post1").Return(int64(5), nil).Once()

		err := uc.DeletePost(ctx, "post1", "ana@example.com", false)

		assert.NoError(t, err)
		mockComments.AssertExpectations(t)
		mockLikes.AssertExpectations(t)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		uc, mockPosts, _, _, _ := newMuralFixture(t)

		mockPosts.On("GetByID", ctx, "post1").Return(post, nil).Once()

		err := uc.DeletePost(ctx, "post1", "stranger@example.com", false)

		assert.ErrorIs(t, err, ErrForbidden)
		mockPosts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMuralUsecase_AddComment(t *testing.T) {
	ctx := context.Background()
	uc, mockPosts, mockComments, _, _ := newMuralFixture(t)

	post := &entity.MuralPost{ID: "post1"}
	mockPosts.On("GetByID", ctx, "post1").Return(post, nil).Once()
	mockComments.On("Create", ctx, mock.AnythingOfType("*entity.Comment")).Return("c1", nil).Once()

	comment, err := uc.AddComment(ctx, "post1", "Bruno", "bruno@example.com", "So happy for Rex!")

	assert.NoError(t, err)
	assert.Equal(t, "c1", comment.ID)
	assert.Equal(t, "post1", comment.PostID)
}
