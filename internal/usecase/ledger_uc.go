package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/cache"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

func balanceCacheKey(actorID string) string {
	return fmt.Sprintf("balance:%s", actorID)
}

const balanceCacheTTL = 1 * time.Minute

// LedgerUsecase owns PetCoin balances. All mutation goes through
// AdjustBalance so the non-negativity invariant has a single enforcement
// point, and the cached copy is dropped on every write: a displayed balance
// must never lag a successful adjustment.
type LedgerUsecase struct {
	actorRepo repository.ActorRepository
	cacheRepo cache.CacheRepository
	log       logger.Logger
}

func NewLedgerUsecase(actorRepo repository.ActorRepository, cacheRepo cache.CacheRepository, log logger.Logger) *LedgerUsecase {
	return &LedgerUsecase{
		actorRepo: actorRepo,
		cacheRepo: cacheRepo,
		log:       log,
	}
}

// GetBalance returns the actor's current coin balance. An unknown actor is
// treated as holding zero coins rather than an error.
func (uc *LedgerUsecase) GetBalance(ctx context.Context, actorID string) (int64, error) {
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, balanceCacheKey(actorID)); err == nil {
			if balance, parseErr := strconv.ParseInt(string(cached), 10, 64); parseErr == nil {
				return balance, nil
			}
			_ = uc.cacheRepo.Delete(ctx, balanceCacheKey(actorID))
		} else if !errors.Is(err, cache.ErrNotFound) {
			uc.log.Warnf("Balance cache read failed for actor %s: %v", actorID, err)
		}
	}

	actor, err := uc.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("LedgerUsecase.GetBalance: %w", err)
	}

	if uc.cacheRepo != nil {
		value := []byte(strconv.FormatInt(actor.Balance, 10))
		if err := uc.cacheRepo.Set(ctx, balanceCacheKey(actorID), value, balanceCacheTTL); err != nil {
			uc.log.Warnf("Balance cache write failed for actor %s: %v", actorID, err)
		}
	}
	return actor.Balance, nil
}

// AdjustBalance credits (delta > 0) or debits (delta < 0) the actor and
// returns the new balance. A debit past zero fails with
// repository.ErrInsufficientFunds and changes nothing.
func (uc *LedgerUsecase) AdjustBalance(ctx context.Context, actorID string, delta int64) (int64, error) {
	if delta == 0 {
		return uc.GetBalance(ctx, actorID)
	}

	newBalance, err := uc.actorRepo.AdjustBalance(ctx, actorID, delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			uc.log.Warnf("Debit of %d rejected for actor %s: insufficient funds", -delta, actorID)
			return 0, err
		}
		return 0, fmt.Errorf("LedgerUsecase.AdjustBalance: %w", err)
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.Delete(ctx, balanceCacheKey(actorID)); err != nil {
			uc.log.Warnf("Balance cache invalidation failed for actor %s: %v", actorID, err)
		}
	}

	uc.log.Infof("Balance adjusted for actor %s: delta=%d new_balance=%d", actorID, delta, newBalance)
	return newBalance, nil
}
