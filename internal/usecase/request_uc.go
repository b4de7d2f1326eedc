package usecase

import (
	"context"
	"fmt"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/nats"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

type SubmitRequestInput struct {
	Kind         entity.RequestKind
	SubjectRef   string
	SubjectName  string
	SubjectImage string
	ActorName    string
	ActorEmail   string
	Message      string

	// Kind-specific extras.
	VisitDate string
	VisitTime string
	RelatedID string
}

// RequestUsecase is the single intake for every submission surface: adoption
// interest, visit scheduling, event suggestions, abuse reports, lost pets,
// direct contact and garage approvals all land in the same queue.
type RequestUsecase struct {
	requestRepo repository.RequestRepository
	publisher   EventPublisher
	mailer      EmailSender
	adminEmail  string
	log         logger.Logger
}

func NewRequestUsecase(requestRepo repository.RequestRepository, publisher EventPublisher, mailer EmailSender, adminEmail string, log logger.Logger) *RequestUsecase {
	return &RequestUsecase{
		requestRepo: requestRepo,
		publisher:   publisher,
		mailer:      mailer,
		adminEmail:  adminEmail,
		log:         log,
	}
}

func (uc *RequestUsecase) Submit(ctx context.Context, input SubmitRequestInput) (*entity.Request, error) {
	req, err := entity.NewRequest(input.Kind, input.SubjectRef, input.SubjectName, input.SubjectImage,
		input.ActorName, input.ActorEmail, input.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	switch input.Kind {
	case entity.KindVisit:
		if input.VisitDate == "" {
			return nil, fmt.Errorf("%w: visit requests need a date", ErrValidation)
		}
		req.Visit = &entity.VisitDetails{Date: input.VisitDate, Time: input.VisitTime}
	case entity.KindGarageApproval:
		if input.RelatedID == "" {
			return nil, fmt.Errorf("%w: garage approval requests need a related item", ErrValidation)
		}
		req.RelatedID = input.RelatedID
	}

	createdID, err := uc.requestRepo.Create(ctx, req)
	if err != nil {
		uc.log.Errorf("Failed to create request in repository: %v", err)
		return nil, fmt.Errorf("RequestUsecase.Submit: %w", err)
	}
	req.ID = createdID

	if uc.publisher != nil {
		if errPub := uc.publisher.Publish(ctx, nats.SubjectRequestCreated, req); errPub != nil {
			uc.log.Warnf("Failed to publish request created event for %s: %v", req.ID, errPub)
		}
	}

	if uc.mailer != nil && uc.adminEmail != "" {
		subject := fmt.Sprintf("New %s request from %s", req.Kind, req.ActorName)
		body := fmt.Sprintf("A new request is waiting in the queue.\n\nKind: %s\nFrom: %s <%s>\nMessage: %s",
			req.Kind, req.ActorName, req.ActorEmail, req.Message)
		if errMail := uc.mailer.SendEmail([]string{uc.adminEmail}, subject, body); errMail != nil {
			uc.log.Warnf("Failed to notify admin about request %s: %v", req.ID, errMail)
		}
	}

	uc.log.Infof("Request %s submitted: kind=%s actor=%s", req.ID, req.Kind, req.ActorEmail)
	return req, nil
}

func (uc *RequestUsecase) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("RequestUsecase.GetByID: %w", err)
	}
	return req, nil
}

// ListAll returns the whole queue, most recent first.
func (uc *RequestUsecase) ListAll(ctx context.Context, page, pageSize int) ([]*entity.Request, int64, error) {
	requests, total, err := uc.requestRepo.List(ctx, repository.ListRequestsParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("RequestUsecase.ListAll: %w", err)
	}
	return requests, total, nil
}

// ListByActor filters the queue down to one actor's submissions, keeping the
// most-recent-first order.
func (uc *RequestUsecase) ListByActor(ctx context.Context, actorEmail string) ([]*entity.Request, error) {
	if actorEmail == "" {
		return nil, fmt.Errorf("%w: actor email cannot be empty", ErrValidation)
	}
	requests, _, err := uc.requestRepo.List(ctx, repository.ListRequestsParams{ActorEmail: actorEmail})
	if err != nil {
		return nil, fmt.Errorf("RequestUsecase.ListByActor: %w", err)
	}
	return requests, nil
}

// Transition moves a request to responded or archived. Re-applying the
// current status is a no-op so admin retries never error.
func (uc *RequestUsecase) Transition(ctx context.Context, id string, newStatus entity.RequestStatus) (*entity.Request, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("RequestUsecase.Transition: %w", err)
	}

	previous := req.Status
	if err := req.Transition(newStatus); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if previous == req.Status {
		return req, nil
	}

	if err := uc.requestRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		uc.log.Errorf("Failed to persist status for request %s: %v", req.ID, err)
		return nil, fmt.Errorf("RequestUsecase.Transition: %w", err)
	}

	if uc.publisher != nil {
		if errPub := uc.publisher.Publish(ctx, nats.SubjectRequestResolved, req); errPub != nil {
			uc.log.Warnf("Failed to publish request resolved event for %s: %v", req.ID, errPub)
		}
	}
	return req, nil
}

// Remove permanently deletes a request. Irreversible; exposed to admins only.
func (uc *RequestUsecase) Remove(ctx context.Context, id string) error {
	if err := uc.requestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("RequestUsecase.Remove: %w", err)
	}
	uc.log.Infof("Request %s deleted", id)
	return nil
}
