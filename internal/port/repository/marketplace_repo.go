package repository

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.OfficialProduct) (string, error)
	GetByID(ctx context.Context, id string) (*entity.OfficialProduct, error)
	List(ctx context.Context) ([]*entity.OfficialProduct, error)
	Update(ctx context.Context, product *entity.OfficialProduct) error
	Delete(ctx context.Context, id string) error

	// DecrementStock atomically takes one unit off the shelf. It fails with
	// ErrOutOfStock when stock is already zero, so two concurrent redemptions
	// of the last unit cannot both succeed.
	DecrementStock(ctx context.Context, id string) error

	// IncrementStock puts one unit back (compensation for a redemption whose
	// coin debit failed after the stock was taken).
	IncrementStock(ctx context.Context, id string) error
}

type GarageItemRepository interface {
	Create(ctx context.Context, item *entity.GarageItem) (string, error)
	GetByID(ctx context.Context, id string) (*entity.GarageItem, error)
	ListByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.GarageItem, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.GarageItem, error)
	UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error
	Delete(ctx context.Context, id string) error
}
