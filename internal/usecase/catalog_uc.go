package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/adapter/nats"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/cache"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
)

const (
	catalogCacheKey = "catalog:all"
	catalogCacheTTL = 5 * time.Minute
)

// CoinLedger is the slice of the ledger the store needs for redemptions.
type CoinLedger interface {
	AdjustBalance(ctx context.Context, actorID string, delta int64) (int64, error)
}

// RequestIntake lets the store raise a garage_approval request without
// depending on the full request usecase.
type RequestIntake interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*entity.Request, error)
}

// FileStorage stores item photos and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, originalFileName string, data []byte) (string, error)
}

// Redemption is what Redeem hands back to the caller: the entry that was
// bought and the buyer's balance after the debit.
type Redemption struct {
	Entry      entity.CatalogEntry `json:"item"`
	NewBalance int64               `json:"newBalance"`
}

// CatalogUsecase is the store: the merged catalog of official products and
// approved garage items, coin redemption, and the garage submission intake.
type CatalogUsecase struct {
	productRepo repository.ProductRepository
	garageRepo  repository.GarageItemRepository
	ledger      CoinLedger
	requests    RequestIntake
	cacheRepo   cache.CacheRepository
	storage     FileStorage
	publisher   EventPublisher
	log         logger.Logger
}

func NewCatalogUsecase(
	productRepo repository.ProductRepository,
	garageRepo repository.GarageItemRepository,
	ledger CoinLedger,
	requests RequestIntake,
	cacheRepo cache.CacheRepository,
	storage FileStorage,
	publisher EventPublisher,
	log logger.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		garageRepo:  garageRepo,
		ledger:      ledger,
		requests:    requests,
		cacheRepo:   cacheRepo,
		storage:     storage,
		publisher:   publisher,
		log:         log,
	}
}

// ListCatalog returns the store's merged view. Category "garagem" selects
// approved garage items only; any other category selects official products;
// no category returns both. Remaining filters apply conjunctively.
func (uc *CatalogUsecase) ListCatalog(ctx context.Context, filter entity.CatalogFilter) ([]entity.CatalogEntry, error) {
	merged, err := uc.loadMergedCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.ListCatalog: %w", err)
	}

	result := make([]entity.CatalogEntry, 0, len(merged))
	for _, entry := range merged {
		if filter.Matches(entry) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (uc *CatalogUsecase) loadMergedCatalog(ctx context.Context) ([]entity.CatalogEntry, error) {
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, catalogCacheKey); err == nil {
			var entries []entity.CatalogEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
			_ = uc.cacheRepo.Delete(ctx, catalogCacheKey)
		} else if !errors.Is(err, cache.ErrNotFound) {
			uc.log.Warnf("Catalog cache read failed: %v", err)
		}
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	garage, err := uc.garageRepo.ListByStatus(ctx, entity.ApprovalApproved)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.CatalogEntry, 0, len(products)+len(garage))
	for _, p := range products {
		entries = append(entries, p.CatalogEntry())
	}
	for _, g := range garage {
		entries = append(entries, g.CatalogEntry())
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := uc.cacheRepo.Set(ctx, catalogCacheKey, data, catalogCacheTTL); err != nil {
				uc.log.Warnf("Catalog cache write failed: %v", err)
			}
		}
	}
	return entries, nil
}

func (uc *CatalogUsecase) invalidateCatalogCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.Delete(ctx, catalogCacheKey); err != nil {
		uc.log.Warnf("Catalog cache invalidation failed: %v", err)
	}
}

// Redeem exchanges PetCoins for one unit of a catalog item. The official
// path reserves stock before the debit and puts the unit back if the debit
// fails, so neither coins nor stock can leak. The garage path has no stock
// dimension and only needs the item approved.
func (uc *CatalogUsecase) Redeem(ctx context.Context, actorID, itemID string, source entity.CatalogSource) (*Redemption, error) {
	switch source {
	case entity.SourceOfficial:
		return uc.redeemOfficial(ctx, actorID, itemID)
	case entity.SourceGarage:
		return uc.redeemGarage(ctx, actorID, itemID)
	default:
		return nil, fmt.Errorf("%w: unknown catalog source %q", ErrValidation, source)
	}
}

func (uc *CatalogUsecase) redeemOfficial(ctx context.Context, actorID, itemID string) (*Redemption, error) {
	product, err := uc.productRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.Redeem: %w", err)
	}

	// Stock is the scarcer resource, so it is reserved first.
	if err := uc.productRepo.DecrementStock(ctx, itemID); err != nil {
		return nil, fmt.Errorf("CatalogUsecase.Redeem: %w", err)
	}

	newBalance, err := uc.ledger.AdjustBalance(ctx, actorID, -product.Price)
	if err != nil {
		if compErr := uc.productRepo.IncrementStock(ctx, itemID); compErr != nil {
			uc.log.Errorf("Stock compensation failed for product %s: %v", itemID, compErr)
		}
		return nil, fmt.Errorf("CatalogUsecase.Redeem: %w", err)
	}

	uc.invalidateCatalogCache(ctx)
	uc.publishRedeemed(ctx, actorID, product.CatalogEntry())

	uc.log.Infof("Product %s redeemed by actor %s for %d coins", itemID, actorID, product.Price)
	return &Redemption{Entry: product.CatalogEntry(), NewBalance: newBalance}, nil
}

func (uc *CatalogUsecase) redeemGarage(ctx context.Context, actorID, itemID string) (*Redemption, error) {
	item, err := uc.garageRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.Redeem: %w", err)
	}
	if item.Status != entity.ApprovalApproved {
		return nil, fmt.Errorf("%w: garage item %s is not approved for sale", ErrValidation, itemID)
	}

	newBalance, err := uc.ledger.AdjustBalance(ctx, actorID, -item.Price)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.Redeem: %w", err)
	}

	uc.publishRedeemed(ctx, actorID, item.CatalogEntry())

	uc.log.Infof("Garage item %s redeemed by actor %s for %d coins", itemID, actorID, item.Price)
	return &Redemption{Entry: item.CatalogEntry(), NewBalance: newBalance}, nil
}

func (uc *CatalogUsecase) publishRedeemed(ctx context.Context, actorID string, entry entity.CatalogEntry) {
	if uc.publisher == nil {
		return
	}
	payload := struct {
		ActorID string              `json:"actorId"`
		Item    entity.CatalogEntry `json:"item"`
	}{ActorID: actorID, Item: entry}
	if err := uc.publisher.Publish(ctx, nats.SubjectMarketplaceRedeemed, payload); err != nil {
		uc.log.Warnf("Failed to publish redeemed event for item %s: %v", entry.ID, err)
	}
}

type SubmitGarageItemInput struct {
	SellerName  string
	SellerEmail string
	Name        string
	Price       int64
	Photo       []byte
	PhotoName   string
}

// SubmitGarageItem takes a peer item in. The item lands pending and a
// garage_approval request carrying its id goes into the queue; the item is
// created first so a queue failure leaves something an admin can still find.
func (uc *CatalogUsecase) SubmitGarageItem(ctx context.Context, input SubmitGarageItemInput) (*entity.GarageItem, error) {
	imageURL := ""
	if len(input.Photo) > 0 {
		if uc.storage == nil {
			return nil, fmt.Errorf("%w: photo uploads are not configured", ErrValidation)
		}
		url, err := uc.storage.Upload(ctx, input.PhotoName, input.Photo)
		if err != nil {
			return nil, fmt.Errorf("CatalogUsecase.SubmitGarageItem: photo upload: %w", err)
		}
		imageURL = url
	}

	item, err := entity.NewGarageItem(input.SellerEmail, input.Name, input.Price, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	createdID, err := uc.garageRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.SubmitGarageItem: %w", err)
	}
	item.ID = createdID

	_, err = uc.requests.Submit(ctx, SubmitRequestInput{
		Kind:         entity.KindGarageApproval,
		SubjectRef:   item.ID,
		SubjectName:  item.Name,
		SubjectImage: item.ImageURL,
		ActorName:    input.SellerName,
		ActorEmail:   item.SellerEmail,
		Message:      fmt.Sprintf("Garage item submitted for %d PetCoins", item.Price),
		RelatedID:    item.ID,
	})
	if err != nil {
		uc.log.Errorf("Garage item %s created but approval request failed: %v", item.ID, err)
		return nil, fmt.Errorf("CatalogUsecase.SubmitGarageItem: %w", err)
	}

	uc.log.Infof("Garage item %s submitted by %s, pending approval", item.ID, item.SellerEmail)
	return item, nil
}

// ListGarageItemsBySeller shows a seller their own items in every status.
func (uc *CatalogUsecase) ListGarageItemsBySeller(ctx context.Context, sellerEmail string) ([]*entity.GarageItem, error) {
	if sellerEmail == "" {
		return nil, fmt.Errorf("%w: seller email cannot be empty", ErrValidation)
	}
	items, err := uc.garageRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.ListGarageItemsBySeller: %w", err)
	}
	return items, nil
}

// DeleteGarageItem removes an item. Only the seller or an admin may do so.
func (uc *CatalogUsecase) DeleteGarageItem(ctx context.Context, itemID, requesterEmail string, isAdmin bool) error {
	item, err := uc.garageRepo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("CatalogUsecase.DeleteGarageItem: %w", err)
	}
	if !isAdmin && item.SellerEmail != requesterEmail {
		return fmt.Errorf("%w: only the seller or an admin can delete a garage item", ErrForbidden)
	}
	if err := uc.garageRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("CatalogUsecase.DeleteGarageItem: %w", err)
	}
	uc.invalidateCatalogCache(ctx)
	uc.log.Infof("Garage item %s deleted by %s", itemID, requesterEmail)
	return nil
}

type ProductInput struct {
	Name     string
	Category string
	Price    int64
	Stock    int
	Photo    []byte
	// PhotoName carries the original file name so the stored key keeps its
	// extension. ImageURL wins if both are set.
	PhotoName string
	ImageURL  string
}

// CreateProduct adds an official product to the store. Admin only; the
// handler enforces the role.
func (uc *CatalogUsecase) CreateProduct(ctx context.Context, input ProductInput) (*entity.OfficialProduct, error) {
	imageURL := input.ImageURL
	if imageURL == "" && len(input.Photo) > 0 && uc.storage != nil {
		url, err := uc.storage.Upload(ctx, input.PhotoName, input.Photo)
		if err != nil {
			return nil, fmt.Errorf("CatalogUsecase.CreateProduct: photo upload: %w", err)
		}
		imageURL = url
	}

	product, err := entity.NewOfficialProduct(input.Name, input.Category, input.Price, input.Stock, imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	createdID, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.CreateProduct: %w", err)
	}
	product.ID = createdID

	uc.invalidateCatalogCache(ctx)
	uc.log.Infof("Product %s created: %s (%s)", product.ID, product.Name, product.Category)
	return product, nil
}

// UpdateProduct replaces the mutable fields of an official product.
func (uc *CatalogUsecase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.OfficialProduct, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CatalogUsecase.UpdateProduct: %w", err)
	}

	updated, err := entity.NewOfficialProduct(input.Name, input.Category, input.Price, input.Stock, input.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	updated.ID = product.ID
	updated.CreatedAt = product.CreatedAt
	if updated.ImageURL == "" {
		updated.ImageURL = product.ImageURL
	}

	if err := uc.productRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("CatalogUsecase.UpdateProduct: %w", err)
	}

	uc.invalidateCatalogCache(ctx)
	return updated, nil
}

func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("CatalogUsecase.DeleteProduct: %w", err)
	}
	uc.invalidateCatalogCache(ctx)
	uc.log.Infof("Product %s deleted", id)
	return nil
}
