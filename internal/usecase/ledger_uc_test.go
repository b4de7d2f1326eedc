package usecase

import (
	"context"
	"testing"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/cache"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLedgerUsecase_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("CacheHit", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		mockCache := new(MockCacheRepository)
		uc := NewLedgerUsecase(mockActors, mockCache, testLogger(t))

		mockCache.On("Get", ctx, balanceCacheKey("actor1")).Return([]byte("250"), nil).Once()

		balance, err := uc.GetBalance(ctx, "actor1")

		assert.NoError(t, err)
		assert.Equal(t, int64(250), balance)
		mockActors.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("CacheMiss_ReadsRepoAndFills", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		mockCache := new(MockCacheRepository)
		uc := NewLedgerUsecase(mockActors, mockCache, testLogger(t))

		actor := &entity.Actor{ID: "actor1", Balance: 70}
		mockCache.On("Get", ctx, balanceCacheKey("actor1")).Return(nil, cache.ErrNotFound).Once()
		mockActors.On("GetByID", ctx, "actor1").Return(actor, nil).Once()
		mockCache.On("Set", ctx, balanceCacheKey("actor1"), []byte("70"), balanceCacheTTL).Return(nil).Once()

		balance, err := uc.GetBalance(ctx, "actor1")

		assert.NoError(t, err)
		assert.Equal(t, int64(70), balance)
		mockActors.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("UnknownActor_ZeroBalance", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		uc := NewLedgerUsecase(mockActors, nil, testLogger(t))

		mockActors.On("GetByID", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

		balance, err := uc.GetBalance(ctx, "ghost")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), balance)
		mockActors.AssertExpectations(t)
	})
}

func TestLedgerUsecase_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Credit_InvalidatesCache", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		mockCache := new(MockCacheRepository)
		uc := NewLedgerUsecase(mockActors, mockCache, testLogger(t))

		mockActors.On("AdjustBalance", ctx, "actor1", int64(50)).Return(int64(150), nil).Once()
		mockCache.On("Delete", ctx, balanceCacheKey("actor1")).Return(nil).Once()

		newBalance, err := uc.AdjustBalance(ctx, "actor1", 50)

		assert.NoError(t, err)
		assert.Equal(t, int64(150), newBalance)
		mockActors.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("OverdraftRejected", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		mockCache := new(MockCacheRepository)
		uc := NewLedgerUsecase(mockActors, mockCache, testLogger(t))

		mockActors.On("AdjustBalance", ctx, "actor1", int64(-500)).
			Return(int64(0), repository.ErrInsufficientFunds).Once()

		_, err := uc.AdjustBalance(ctx, "actor1", -500)

		assert.ErrorIs(t, err, repository.ErrInsufficientFunds)
		mockCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockActors.AssertExpectations(t)
	})

	t.Run("ZeroDelta_NoWrite", func(t *testing.T) {
		mockActors := new(MockActorRepository)
		uc := NewLedgerUsecase(mockActors, nil, testLogger(t))

		mockActors.On("GetByID", ctx, "actor1").Return(&entity.Actor{ID: "actor1", Balance: 30}, nil).Once()

		balance, err := uc.AdjustBalance(ctx, "actor1", 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(30), balance)
		mockActors.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}
