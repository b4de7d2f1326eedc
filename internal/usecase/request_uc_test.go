package usecase

import (
	"context"
	"testing"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/nats"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestUsecase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("InterestRequest", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		mockPub := new(MockPublisher)
		uc := NewRequestUsecase(mockRepo, mockPub, nil, "", testLogger(t))

		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Request")).Return("r1", nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectRequestCreated, mock.Anything).Return(nil).Once()

		req, err := uc.Submit(ctx, SubmitRequestInput{
			Kind:        entity.KindInterest,
			SubjectRef:  "pet1",
			SubjectName: "Rex",
			ActorName:   "Ana",
			ActorEmail:  "ana@example.com",
			Message:     "I would love to adopt Rex",
		})

		assert.NoError(t, err)
		assert.Equal(t, "r1", req.ID)
		assert.Equal(t, entity.RequestPending, req.Status)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("VisitRequiresDate", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		_, err := uc.Submit(ctx, SubmitRequestInput{
			Kind:       entity.KindVisit,
			ActorEmail: "ana@example.com",
			Message:    "visit please",
		})

		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("VisitCarriesDetails", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		mockRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Request) bool {
			return r.Visit != nil && r.Visit.Date == "2026-09-15" && r.Visit.Time == "14:00"
		})).Return("r2", nil).Once()

		req, err := uc.Submit(ctx, SubmitRequestInput{
			Kind:       entity.KindVisit,
			ActorEmail: "ana@example.com",
			Message:    "visit please",
			VisitDate:  "2026-09-15",
			VisitTime:  "14:00",
		})

		assert.NoError(t, err)
		assert.NotNil(t, req.Visit)
		mockRepo.AssertExpectations(t)
	})

	t.Run("GarageApprovalRequiresRelatedID", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		_, err := uc.Submit(ctx, SubmitRequestInput{
			Kind:       entity.KindGarageApproval,
			ActorEmail: "ana@example.com",
			Message:    "garage item",
		})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnknownKindRejected", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		_, err := uc.Submit(ctx, SubmitRequestInput{
			Kind:       entity.RequestKind("party_invite"),
			ActorEmail: "ana@example.com",
			Message:    "hello",
		})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestRequestUsecase_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingToResponded", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		mockPub := new(MockPublisher)
		uc := NewRequestUsecase(mockRepo, mockPub, nil, "", testLogger(t))

		pending := &entity.Request{ID: "r1", Kind: entity.KindInterest, Status: entity.RequestPending}
		mockRepo.On("GetByID", ctx, "r1").Return(pending, nil).Once()
		mockRepo.On("UpdateStatus", ctx, "r1", entity.RequestResponded).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectRequestResolved, mock.Anything).Return(nil).Once()

		req, err := uc.Transition(ctx, "r1", entity.RequestResponded)

		assert.NoError(t, err)
		assert.Equal(t, entity.RequestResponded, req.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ReapplySameStatusIsNoop", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		mockPub := new(MockPublisher)
		uc := NewRequestUsecase(mockRepo, mockPub, nil, "", testLogger(t))

		responded := &entity.Request{ID: "r1", Kind: entity.KindInterest, Status: entity.RequestResponded}
		mockRepo.On("GetByID", ctx, "r1").Return(responded, nil).Once()

		req, err := uc.Transition(ctx, "r1", entity.RequestResponded)

		assert.NoError(t, err)
		assert.Equal(t, entity.RequestResponded, req.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LeavingTerminalStateRejected", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		archived := &entity.Request{ID: "r1", Kind: entity.KindInterest, Status: entity.RequestArchived}
		mockRepo.On("GetByID", ctx, "r1").Return(archived, nil).Once()

		_, err := uc.Transition(ctx, "r1", entity.RequestResponded)

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		mockRepo := new(MockRequestRepository)
		uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

		mockRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := uc.Transition(ctx, "missing", entity.RequestResponded)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRequestUsecase_ListByActor(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRequestRepository)
	uc := NewRequestUsecase(mockRepo, nil, nil, "", testLogger(t))

	expected := []*entity.Request{{ID: "r2"}, {ID: "r1"}}
	mockRepo.On("List", ctx, repository.ListRequestsParams{ActorEmail: "ana@example.com"}).
		Return(expected, int64(2), nil).Once()

	requests, err := uc.ListByActor(ctx, "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, expected, requests)

	_, err = uc.ListByActor(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
}
