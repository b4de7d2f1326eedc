package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/stretchr/testify/mock"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.NewZapLogger(logger.Config{Level: "debug", Encoding: "console"})
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return log
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Create(ctx context.Context, actor *entity.Actor) (string, error) {
	args := m.Called(ctx, actor)
	return args.String(0), args.Error(1)
}
func (m *MockActorRepository) GetByID(ctx context.Context, id string) (*entity.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}
func (m *MockActorRepository) GetByEmail(ctx context.Context, email string) (*entity.Actor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}
func (m *MockActorRepository) List(ctx context.Context, params repository.ListActorsParams) ([]*entity.Actor, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Actor), args.Get(1).(int64), args.Error(2)
}
func (m *MockActorRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
	args := m.Called(ctx, id, status, version)
	return args.Error(0)
}
func (m *MockActorRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockActorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Create(ctx context.Context, req *entity.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
func (m *MockRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}
func (m *MockRequestRepository) List(ctx context.Context, params repository.ListRequestsParams) ([]*entity.Request, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Request), args.Get(1).(int64), args.Error(2)
}
func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Create(ctx context.Context, product *entity.OfficialProduct) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}
func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.OfficialProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OfficialProduct), args.Error(1)
}
func (m *MockProductRepository) List(ctx context.Context) ([]*entity.OfficialProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OfficialProduct), args.Error(1)
}
func (m *MockProductRepository) Update(ctx context.Context, product *entity.OfficialProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepository) DecrementStock(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepository) IncrementStock(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGarageRepository struct{ mock.Mock }

func (m *MockGarageRepository) Create(ctx context.Context, item *entity.GarageItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}
func (m *MockGarageRepository) GetByID(ctx context.Context, id string) (*entity.GarageItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GarageItem), args.Error(1)
}
func (m *MockGarageRepository) ListByStatus(ctx context.Context, status entity.ApprovalStatus) ([]*entity.GarageItem, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GarageItem), args.Error(1)
}
func (m *MockGarageRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.GarageItem, error) {
	args := m.Called(ctx, sellerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GarageItem), args.Error(1)
}
func (m *MockGarageRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
	args := m.Called(ctx, id, status, version)
	return args.Error(0)
}
func (m *MockGarageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPetRepository struct{ mock.Mock }

func (m *MockPetRepository) Create(ctx context.Context, pet *entity.PetListing) (string, error) {
	args := m.Called(ctx, pet)
	return args.String(0), args.Error(1)
}
func (m *MockPetRepository) GetByID(ctx context.Context, id string) (*entity.PetListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PetListing), args.Error(1)
}
func (m *MockPetRepository) List(ctx context.Context, params repository.ListPetsParams) ([]*entity.PetListing, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.PetListing), args.Get(1).(int64), args.Error(2)
}
func (m *MockPetRepository) UpdateStatus(ctx context.Context, id string, status entity.ApprovalStatus, version int) error {
	args := m.Called(ctx, id, status, version)
	return args.Error(0)
}
func (m *MockPetRepository) AddPhoto(ctx context.Context, id string, photoURL string) error {
	args := m.Called(ctx, id, photoURL)
	return args.Error(0)
}
func (m *MockPetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMuralRepository struct{ mock.Mock }

func (m *MockMuralRepository) Create(ctx context.Context, post *entity.MuralPost) (string, error) {
	args := m.Called(ctx, post)
	return args.String(0), args.Error(1)
}
func (m *MockMuralRepository) GetByID(ctx context.Context, id string) (*entity.MuralPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MuralPost), args.Error(1)
}
func (m *MockMuralRepository) List(ctx context.Context, page, pageSize int) ([]*entity.MuralPost, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.MuralPost), args.Get(1).(int64), args.Error(2)
}
func (m *MockMuralRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) (string, error) {
	args := m.Called(ctx, comment)
	return args.String(0), args.Error(1)
}
func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}
func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCommentRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLikeRepository struct{ mock.Mock }

func (m *MockLikeRepository) AddLike(ctx context.Context, postID, actorEmail string) error {
	args := m.Called(ctx, postID, actorEmail)
	return args.Error(0)
}
func (m *MockLikeRepository) RemoveLike(ctx context.Context, postID, actorEmail string) error {
	args := m.Called(ctx, postID, actorEmail)
	return args.Error(0)
}
func (m *MockLikeRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLikeRepository) HasLiked(ctx context.Context, postID, actorEmail string) (bool, error) {
	args := m.Called(ctx, postID, actorEmail)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Set(ctx context.Context, actorID, token string, ttl time.Duration) error {
	args := m.Called(ctx, actorID, token, ttl)
	return args.Error(0)
}
func (m *MockSessionStore) Get(ctx context.Context, actorID string) (string, error) {
	args := m.Called(ctx, actorID)
	return args.String(0), args.Error(1)
}
func (m *MockSessionStore) Clear(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	args := m.Called(ctx, subject, payload)
	return args.Error(0)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) SendEmail(to []string, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	args := m.Called(ctx, originalFileName, data)
	return args.String(0), args.Error(1)
}

type MockCoinLedger struct{ mock.Mock }

func (m *MockCoinLedger) AdjustBalance(ctx context.Context, actorID string, delta int64) (int64, error) {
	args := m.Called(ctx, actorID, delta)
	return args.Get(0).(int64), args.Error(1)
}

type MockRequestIntake struct{ mock.Mock }

func (m *MockRequestIntake) Submit(ctx context.Context, input SubmitRequestInput) (*entity.Request, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Request), args.Error(1)
}
