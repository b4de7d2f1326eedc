package repository

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

type ListRequestsParams struct {
	ActorEmail string
	Kind       entity.RequestKind
	Status     entity.RequestStatus
	Page       int
	PageSize   int
}

type RequestRepository interface {
	Create(ctx context.Context, req *entity.Request) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Request, error)

	// List returns requests most-recent-first (created_at desc, insertion
	// order as tiebreak).
	List(ctx context.Context, params ListRequestsParams) ([]*entity.Request, int64, error)

	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error
	Delete(ctx context.Context, id string) error
}
