package repository

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

type ListPetsParams struct {
	OwnerEmail string
	Mode       entity.PetMode
	Status     entity.ApprovalStatus
	Species    string
	Page       int
	PageSize   int
}

type PetRepository interface {
	Create(ctx context.Context, pet *entity.PetListing) (string, error)
	GetByID(ctx context.Context, id string) (*entity.PetListing, error)
	List(ctx context.Context, params ListPetsParams) ([]*entity.PetListing, int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error
	AddPhoto(ctx context.Context, id string, photoURL string) error
	Delete(ctx context.Context, id string) error
}
