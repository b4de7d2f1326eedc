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

func newModerationFixture(t *testing.T) (*ModerationUsecase, *MockRequestRepository, *MockGarageRepository, *MockActorRepository, *MockPetRepository, *MockPublisher, *MockEmailSender) {
	mockRequests := new(MockRequestRepository)
	mockGarage := new(MockGarageRepository)
	mockActors := new(MockActorRepository)
	mockPets := new(MockPetRepository)
	mockPub := new(MockPublisher)
	mockEmail := new(MockEmailSender)
	uc := NewModerationUsecase(mockRequests, mockGarage, mockActors, mockPets, mockPub, mockEmail, testLogger(t))
	return uc, mockRequests, mockGarage, mockActors, mockPets, mockPub, mockEmail
}

func pendingApprovalRequest() *entity.Request {
	return &entity.Request{
		ID:         "r1",
		Kind:       entity.KindGarageApproval,
		RelatedID:  "g1",
		ActorEmail: "ana@example.com",
		Status:     entity.RequestPending,
	}
}

func pendingGarageItem() *entity.GarageItem {
	return &entity.GarageItem{
		ID:          "g1",
		SellerEmail: "ana@example.com",
		Name:        "Used Crate",
		Price:       80,
		Status:      entity.ApprovalPending,
		Version:     1,
	}
}

func TestModerationUsecase_ResolveGarageApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve_ItemFirstThenRequest", func(t *testing.T) {
		uc, mockRequests, mockGarage, _, _, mockPub, mockEmail := newModerationFixture(t)

		mockRequests.On("GetByID", ctx, "r1").Return(pendingApprovalRequest(), nil).Once()
		mockGarage.On("GetByID", ctx, "g1").Return(pendingGarageItem(), nil).Once()
		mockGarage.On("UpdateStatus", ctx, "g1", entity.ApprovalApproved, 1).Return(nil).Once()
		mockRequests.On("UpdateStatus", ctx, "r1", entity.RequestResponded).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectGarageItemApproved, mock.Anything).Return(nil).Once()
		mockEmail.On("SendEmail", []string{"ana@example.com"}, mock.Anything, mock.Anything).Return(nil).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", true)

		assert.NoError(t, err)
		mockRequests.AssertExpectations(t)
		mockGarage.AssertExpectations(t)
		mockPub.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("Reject_ArchivesRequest", func(t *testing.T) {
		uc, mockRequests, mockGarage, _, _, mockPub, mockEmail := newModerationFixture(t)

		mockRequests.On("GetByID", ctx, "r1").Return(pendingApprovalRequest(), nil).Once()
		mockGarage.On("GetByID", ctx, "g1").Return(pendingGarageItem(), nil).Once()
		mockGarage.On("UpdateStatus", ctx, "g1", entity.ApprovalRejected, 1).Return(nil).Once()
		mockRequests.On("UpdateStatus", ctx, "r1", entity.RequestArchived).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectGarageItemRejected, mock.Anything).Return(nil).Once()
		mockEmail.On("SendEmail", []string{"ana@example.com"}, mock.Anything, mock.Anything).Return(nil).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", false)

		assert.NoError(t, err)
		mockGarage.AssertExpectations(t)
	})

	t.Run("ItemUpdateFails_RequestStaysPending", func(t *testing.T) {
		uc, mockRequests, mockGarage, _, _, _, _ := newModerationFixture(t)

		mockRequests.On("GetByID", ctx, "r1").Return(pendingApprovalRequest(), nil).Once()
		mockGarage.On("GetByID", ctx, "g1").Return(pendingGarageItem(), nil).Once()
		mockGarage.On("UpdateStatus", ctx, "g1", entity.ApprovalApproved, 1).
			Return(repository.ErrOptimisticLock).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", true)

		assert.ErrorIs(t, err, repository.ErrOptimisticLock)
		mockRequests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RetryAfterPartialFailure_ItemAlreadyApproved", func(t *testing.T) {
		uc, mockRequests, mockGarage, _, _, mockPub, mockEmail := newModerationFixture(t)

		approvedItem := pendingGarageItem()
		approvedItem.Status = entity.ApprovalApproved
		mockRequests.On("GetByID", ctx, "r1").Return(pendingApprovalRequest(), nil).Once()
		mockGarage.On("GetByID", ctx, "g1").Return(approvedItem, nil).Once()
		mockRequests.On("UpdateStatus", ctx, "r1", entity.RequestResponded).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectGarageItemApproved, mock.Anything).Return(nil).Once()
		mockEmail.On("SendEmail", []string{"ana@example.com"}, mock.Anything, mock.Anything).Return(nil).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", true)

		assert.NoError(t, err)
		mockGarage.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyResolved_SameDecisionIsNoop", func(t *testing.T) {
		uc, mockRequests, mockGarage, _, _, _, _ := newModerationFixture(t)

		resolved := pendingApprovalRequest()
		resolved.Status = entity.RequestResponded
		mockRequests.On("GetByID", ctx, "r1").Return(resolved, nil).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", true)

		assert.NoError(t, err)
		mockGarage.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("WrongKindRejected", func(t *testing.T) {
		uc, mockRequests, _, _, _, _, _ := newModerationFixture(t)

		wrong := pendingApprovalRequest()
		wrong.Kind = entity.KindInterest
		mockRequests.On("GetByID", ctx, "r1").Return(wrong, nil).Once()

		err := uc.ResolveGarageApproval(ctx, "r1", true)

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestModerationUsecase_ResolveActorRegistration(t *testing.T) {
	ctx := context.Background()

	pendingActor := func() *entity.Actor {
		return &entity.Actor{
			ID:      "a1",
			Name:    "Bruno",
			Email:   "bruno@example.com",
			Role:    entity.RoleVolunteer,
			Status:  entity.ApprovalPending,
			Version: 1,
		}
	}

	t.Run("Approve", func(t *testing.T) {
		uc, _, _, mockActors, _, mockPub, mockEmail := newModerationFixture(t)

		mockActors.On("GetByID", ctx, "a1").Return(pendingActor(), nil).Once()
		mockActors.On("UpdateStatus", ctx, "a1", entity.ApprovalApproved, 1).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectActorApproved, mock.Anything).Return(nil).Once()
		mockEmail.On("SendEmail", []string{"bruno@example.com"}, mock.Anything, mock.Anything).Return(nil).Once()

		actor, err := uc.ResolveActorRegistration(ctx, "a1", true)

		assert.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, actor.Status)
		mockActors.AssertExpectations(t)
	})

	t.Run("Reject", func(t *testing.T) {
		uc, _, _, mockActors, _, mockPub, mockEmail := newModerationFixture(t)

		mockActors.On("GetByID", ctx, "a1").Return(pendingActor(), nil).Once()
		mockActors.On("UpdateStatus", ctx, "a1", entity.ApprovalRejected, 1).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectActorRejected, mock.Anything).Return(nil).Once()
		mockEmail.On("SendEmail", []string{"bruno@example.com"}, mock.Anything, mock.Anything).Return(nil).Once()

		actor, err := uc.ResolveActorRegistration(ctx, "a1", false)

		assert.NoError(t, err)
		assert.Equal(t, entity.ApprovalRejected, actor.Status)
	})

	t.Run("SameDecisionIsNoop", func(t *testing.T) {
		uc, _, _, mockActors, _, _, _ := newModerationFixture(t)

		approved := pendingActor()
		approved.Status = entity.ApprovalApproved
		mockActors.On("GetByID", ctx, "a1").Return(approved, nil).Once()

		actor, err := uc.ResolveActorRegistration(ctx, "a1", true)

		assert.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, actor.Status)
		mockActors.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestModerationUsecase_ResolvePetListing(t *testing.T) {
	ctx := context.Background()

	pendingPet := &entity.PetListing{
		ID:         "pet1",
		OwnerEmail: "carla@example.com",
		Name:       "Rex",
		Species:    "dog",
		Mode:       entity.ModeAdoption,
		Status:     entity.ApprovalPending,
		Version:    1,
	}

	t.Run("Approve", func(t *testing.T) {
		uc, _, _, _, mockPets, mockPub, _ := newModerationFixture(t)

		mockPets.On("GetByID", ctx, "pet1").Return(pendingPet, nil).Once()
		mockPets.On("UpdateStatus", ctx, "pet1", entity.ApprovalApproved, 1).Return(nil).Once()
		mockPub.On("Publish", ctx, nats.SubjectPetListingResolved, mock.Anything).Return(nil).Once()

		pet, err := uc.ResolvePetListing(ctx, "pet1", true)

		assert.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, pet.Status)
		mockPets.AssertExpectations(t)
	})
}
