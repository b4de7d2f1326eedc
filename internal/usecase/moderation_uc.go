package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/nats"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

type EmailSender interface {
	SendEmail(to []string, subject, body string) error
}

// ModerationUsecase is the admin-side state machine: it resolves queue
// entries and applies the coupled side effect on the correlated entity
// (garage item, actor account, pet listing). The correlated entity is always
// mutated first and the request marked resolved second, so a failure in
// between leaves the request pending and the whole operation retryable.
type ModerationUsecase struct {
	requestRepo repository.RequestRepository
	garageRepo  repository.GarageItemRepository
	actorRepo   repository.ActorRepository
	petRepo     repository.PetRepository
	publisher   EventPublisher
	mailer      EmailSender
	log         logger.Logger
}

func NewModerationUsecase(
	requestRepo repository.RequestRepository,
	garageRepo repository.GarageItemRepository,
	actorRepo repository.ActorRepository,
	petRepo repository.PetRepository,
	publisher EventPublisher,
	mailer EmailSender,
	log logger.Logger,
) *ModerationUsecase {
	return &ModerationUsecase{
		requestRepo: requestRepo,
		garageRepo:  garageRepo,
		actorRepo:   actorRepo,
		petRepo:     petRepo,
		publisher:   publisher,
		mailer:      mailer,
		log:         log,
	}
}

// ResolveGarageApproval decides a garage_approval request: approve makes the
// item publicly redeemable and marks the request responded; reject hides the
// item for good and archives the request. Calling it again after a completed
// resolution is a no-op.
func (uc *ModerationUsecase) ResolveGarageApproval(ctx context.Context, requestID string, approve bool) error {
	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("ModerationUsecase.ResolveGarageApproval: %w", err)
	}
	if req.Kind != entity.KindGarageApproval || req.RelatedID == "" {
		return fmt.Errorf("%w: request %s is not a garage approval", ErrValidation, requestID)
	}

	itemStatus := entity.ApprovalApproved
	requestStatus := entity.RequestResponded
	if !approve {
		itemStatus = entity.ApprovalRejected
		requestStatus = entity.RequestArchived
	}

	if req.Status == requestStatus {
		return nil
	}
	if req.IsResolved() {
		return fmt.Errorf("%w: request %s already resolved", ErrValidation, requestID)
	}

	item, err := uc.garageRepo.GetByID(ctx, req.RelatedID)
	if err != nil {
		return fmt.Errorf("ModerationUsecase.ResolveGarageApproval: item lookup: %w", err)
	}

	// Item first, request second. If the item update fails the request stays
	// pending and the admin can simply retry.
	if item.Status != itemStatus {
		version := item.Version
		if err := item.Resolve(itemStatus); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if err := uc.garageRepo.UpdateStatus(ctx, item.ID, item.Status, version); err != nil {
			if !errors.Is(err, repository.ErrOptimisticLock) {
				uc.log.Errorf("Failed to update garage item %s status: %v", item.ID, err)
			}
			return fmt.Errorf("ModerationUsecase.ResolveGarageApproval: item update: %w", err)
		}
	}

	if err := uc.requestRepo.UpdateStatus(ctx, req.ID, requestStatus); err != nil {
		uc.log.Errorf("Garage item %s resolved but request %s not marked: %v", item.ID, req.ID, err)
		return fmt.Errorf("ModerationUsecase.ResolveGarageApproval: request update: %w", err)
	}

	subject := nats.SubjectGarageItemApproved
	if !approve {
		subject = nats.SubjectGarageItemRejected
	}
	if uc.publisher != nil {
		if errPub := uc.publisher.Publish(ctx, subject, item); errPub != nil {
			uc.log.Warnf("Failed to publish garage decision event for item %s: %v", item.ID, errPub)
		}
	}
	uc.notifySeller(item, approve)

	uc.log.Infof("Garage approval %s resolved: item=%s approve=%t", req.ID, item.ID, approve)
	return nil
}

func (uc *ModerationUsecase) notifySeller(item *entity.GarageItem, approve bool) {
	if uc.mailer == nil || item.SellerEmail == "" {
		return
	}
	subject := fmt.Sprintf("Your garage item was approved: %s", item.Name)
	body := fmt.Sprintf("Good news!\n\nYour item '%s' is now listed in the PetMatch store for %d PetCoins.", item.Name, item.Price)
	if !approve {
		subject = fmt.Sprintf("Your garage item was not approved: %s", item.Name)
		body = fmt.Sprintf("Unfortunately your item '%s' was not approved for the PetMatch store.", item.Name)
	}
	if err := uc.mailer.SendEmail([]string{item.SellerEmail}, subject, body); err != nil {
		uc.log.Warnf("Failed to send garage decision email to %s: %v", item.SellerEmail, err)
	}
}

// ResolveActorRegistration applies the admin decision on a pending account.
// Approval is what makes a partner profile publicly visible.
func (uc *ModerationUsecase) ResolveActorRegistration(ctx context.Context, actorID string, approve bool) (*entity.Actor, error) {
	actor, err := uc.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("ModerationUsecase.ResolveActorRegistration: %w", err)
	}

	status := entity.ApprovalApproved
	subject := nats.SubjectActorApproved
	if !approve {
		status = entity.ApprovalRejected
		subject = nats.SubjectActorRejected
	}
	if actor.Status == status {
		return actor, nil
	}

	version := actor.Version
	if err := actor.Resolve(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := uc.actorRepo.UpdateStatus(ctx, actor.ID, actor.Status, version); err != nil {
		return nil, fmt.Errorf("ModerationUsecase.ResolveActorRegistration: %w", err)
	}

	if uc.publisher != nil {
		if errPub := uc.publisher.Publish(ctx, subject, actor); errPub != nil {
			uc.log.Warnf("Failed to publish actor decision event for %s: %v", actor.ID, errPub)
		}
	}
	if uc.mailer != nil {
		body := "Welcome to PetMatch! Your account has been approved and all features are now available."
		mailSubject := "Your PetMatch account was approved"
		if !approve {
			body = "Unfortunately your PetMatch registration was not approved."
			mailSubject = "Your PetMatch registration"
		}
		if errMail := uc.mailer.SendEmail([]string{actor.Email}, mailSubject, body); errMail != nil {
			uc.log.Warnf("Failed to send decision email to %s: %v", actor.Email, errMail)
		}
	}

	uc.log.Infof("Actor %s registration resolved: approve=%t", actor.ID, approve)
	return actor, nil
}

// ResolvePetListing moderates a pet listing; only approved listings show up
// in public browsing.
func (uc *ModerationUsecase) ResolvePetListing(ctx context.Context, petID string, approve bool) (*entity.PetListing, error) {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("ModerationUsecase.ResolvePetListing: %w", err)
	}

	status := entity.ApprovalApproved
	if !approve {
		status = entity.ApprovalRejected
	}
	if pet.Status == status {
		return pet, nil
	}

	version := pet.Version
	if err := pet.Resolve(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := uc.petRepo.UpdateStatus(ctx, pet.ID, pet.Status, version); err != nil {
		return nil, fmt.Errorf("ModerationUsecase.ResolvePetListing: %w", err)
	}

	if uc.publisher != nil {
		if errPub := uc.publisher.Publish(ctx, nats.SubjectPetListingResolved, pet); errPub != nil {
			uc.log.Warnf("Failed to publish pet listing decision event for %s: %v", pet.ID, errPub)
		}
	}

	uc.log.Infof("Pet listing %s resolved: approve=%t", pet.ID, approve)
	return pet, nil
}
