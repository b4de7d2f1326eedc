package repository

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

type ListActorsParams struct {
	Role     entity.ActorRole
	Status   entity.ApprovalStatus
	Page     int
	PageSize int
}

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Actor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Actor, error)
	List(ctx context.Context, params ListActorsParams) ([]*entity.Actor, int64, error)

	// UpdateStatus persists an approval decision using the version the caller
	// read; a concurrent modification surfaces as ErrOptimisticLock.
	UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error

	// AdjustBalance applies delta (positive credit, negative debit) as one
	// guarded atomic update and returns the resulting balance. A debit that
	// would go negative fails with ErrInsufficientFunds before any mutation.
	AdjustBalance(ctx context.Context, id string, delta int64) (int64, error)

	Delete(ctx context.Context, id string) error
}
