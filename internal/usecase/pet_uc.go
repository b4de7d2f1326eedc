package usecase

import (
	"context"
	"fmt"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

type CreatePetInput struct {
	OwnerEmail  string
	Name        string
	Species     string
	Breed       string
	Age         string
	Story       string
	HealthNotes string
	Mode        entity.PetMode
}

type BrowsePetsInput struct {
	Mode     entity.PetMode
	Species  string
	Page     int
	PageSize int
}

// PetUsecase manages pet listings. Listings start pending and only show up
// in public browsing once an admin has approved them.
type PetUsecase struct {
	petRepo repository.PetRepository
	storage FileStorage
	log     logger.Logger
}

func NewPetUsecase(petRepo repository.PetRepository, storage FileStorage, log logger.Logger) *PetUsecase {
	return &PetUsecase{
		petRepo: petRepo,
		storage: storage,
		log:     log,
	}
}

func (uc *PetUsecase) Create(ctx context.Context, input CreatePetInput) (*entity.PetListing, error) {
	pet, err := entity.NewPetListing(input.OwnerEmail, input.Name, input.Species, input.Breed,
		input.Age, input.Story, input.HealthNotes, input.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	createdID, err := uc.petRepo.Create(ctx, pet)
	if err != nil {
		return nil, fmt.Errorf("PetUsecase.Create: %w", err)
	}
	pet.ID = createdID

	uc.log.Infof("Pet listing %s created by %s: %s (%s), pending approval", pet.ID, pet.OwnerEmail, pet.Name, pet.Mode)
	return pet, nil
}

func (uc *PetUsecase) GetByID(ctx context.Context, id string) (*entity.PetListing, error) {
	pet, err := uc.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("PetUsecase.GetByID: %w", err)
	}
	return pet, nil
}

// Browse is the public view: approved listings only, regardless of what the
// caller asks for.
func (uc *PetUsecase) Browse(ctx context.Context, input BrowsePetsInput) ([]*entity.PetListing, int64, error) {
	pets, total, err := uc.petRepo.List(ctx, repository.ListPetsParams{
		Mode:     input.Mode,
		Status:   entity.ApprovalApproved,
		Species:  input.Species,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("PetUsecase.Browse: %w", err)
	}
	return pets, total, nil
}

// ListMine shows an owner their own listings in every status.
func (uc *PetUsecase) ListMine(ctx context.Context, ownerEmail string) ([]*entity.PetListing, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: owner email cannot be empty", ErrValidation)
	}
	pets, _, err := uc.petRepo.List(ctx, repository.ListPetsParams{OwnerEmail: ownerEmail})
	if err != nil {
		return nil, fmt.Errorf("PetUsecase.ListMine: %w", err)
	}
	return pets, nil
}

// UploadPhoto stores a photo and attaches its URL to the listing. Only the
// owner or an admin may add photos.
func (uc *PetUsecase) UploadPhoto(ctx context.Context, petID, requesterEmail string, isAdmin bool, fileName string, data []byte) (string, error) {
	if uc.storage == nil {
		return "", fmt.Errorf("%w: photo uploads are not configured", ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: photo data cannot be empty", ErrValidation)
	}

	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return "", fmt.Errorf("PetUsecase.UploadPhoto: %w", err)
	}
	if !isAdmin && pet.OwnerEmail != requesterEmail {
		return "", fmt.Errorf("%w: only the owner or an admin can add photos", ErrForbidden)
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		return "", fmt.Errorf("PetUsecase.UploadPhoto: %w", err)
	}
	if err := uc.petRepo.AddPhoto(ctx, petID, url); err != nil {
		return "", fmt.Errorf("PetUsecase.UploadPhoto: %w", err)
	}

	uc.log.Infof("Photo added to pet listing %s", petID)
	return url, nil
}

// Delete removes a listing. Only the owner or an admin may do so.
func (uc *PetUsecase) Delete(ctx context.Context, petID, requesterEmail string, isAdmin bool) error {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return fmt.Errorf("PetUsecase.Delete: %w", err)
	}
	if !isAdmin && pet.OwnerEmail != requesterEmail {
		return fmt.Errorf("%w: only the owner or an admin can delete a listing", ErrForbidden)
	}
	if err := uc.petRepo.Delete(ctx, petID); err != nil {
		return fmt.Errorf("PetUsecase.Delete: %w", err)
	}
	uc.log.Infof("Pet listing %s deleted by %s", petID, requesterEmail)
	return nil
}
