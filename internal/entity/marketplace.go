package entity

import (
	"errors"
	"strings"
	"time"
)

// CategoryGarage is the reserved catalog category that selects peer-submitted
// garage items instead of official products.
const CategoryGarage = "garagem"

type OfficialProduct struct {
	ID        string    `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Category  string    `bson:"category"`
	Price     int64     `bson:"price"`
	Stock     int       `bson:"stock"`
	ImageURL  string    `bson:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewOfficialProduct(name, category string, price int64, stock int, imageURL string) (*OfficialProduct, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("product name cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return nil, errors.New("product category cannot be empty")
	}
	if category == CategoryGarage {
		return nil, errors.New("category is reserved for garage items")
	}
	if price <= 0 {
		return nil, errors.New("product price must be positive")
	}
	if stock < 0 {
		return nil, errors.New("product stock cannot be negative")
	}
	now := time.Now().UTC()
	return &OfficialProduct{
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     stock,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type GarageItem struct {
	ID          string         `bson:"_id,omitempty"`
	SellerEmail string         `bson:"seller_email"`
	Name        string         `bson:"name"`
	Price       int64          `bson:"price"`
	ImageURL    string         `bson:"image_url,omitempty"`
	Status      ApprovalStatus `bson:"status"`
	CreatedAt   time.Time      `bson:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at"`
	Version     int            `bson:"version"`
}

func NewGarageItem(sellerEmail, name string, price int64, imageURL string) (*GarageItem, error) {
	if strings.TrimSpace(sellerEmail) == "" {
		return nil, errors.New("seller email cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("garage item name cannot be empty")
	}
	if price <= 0 {
		return nil, errors.New("garage item price must be positive")
	}
	now := time.Now().UTC()
	return &GarageItem{
		SellerEmail: strings.ToLower(strings.TrimSpace(sellerEmail)),
		Name:        name,
		Price:       price,
		ImageURL:    imageURL,
		Status:      ApprovalPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}, nil
}

// Resolve applies the moderation decision. Same-status re-application is a
// no-op so that garage approval retries stay safe.
func (g *GarageItem) Resolve(status ApprovalStatus) error {
	if status != ApprovalApproved && status != ApprovalRejected {
		return errors.New("garage item decision must be approved or rejected")
	}
	if g.Status == status {
		return nil
	}
	g.Status = status
	g.UpdatedAt = time.Now().UTC()
	g.Version++
	return nil
}

type CatalogSource string

const (
	SourceOfficial CatalogSource = "official"
	SourceGarage   CatalogSource = "garage"
)

// CatalogEntry is the tagged merge of the two item shapes the store sells.
// Source is the discriminant: official entries carry Category and Stock,
// garage entries carry SellerEmail.
type CatalogEntry struct {
	Source      CatalogSource `json:"source"`
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       int64         `json:"price"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Category    string        `json:"category,omitempty"`
	Stock       int           `json:"stock,omitempty"`
	SellerEmail string        `json:"sellerEmail,omitempty"`
}

func (p *OfficialProduct) CatalogEntry() CatalogEntry {
	return CatalogEntry{
		Source:   SourceOfficial,
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Category: p.Category,
		Stock:    p.Stock,
	}
}

func (g *GarageItem) CatalogEntry() CatalogEntry {
	return CatalogEntry{
		Source:      SourceGarage,
		ID:          g.ID,
		Name:        g.Name,
		Price:       g.Price,
		ImageURL:    g.ImageURL,
		Category:    CategoryGarage,
		SellerEmail: g.SellerEmail,
	}
}

// CatalogFilter is applied conjunctively: every provided field must match.
type CatalogFilter struct {
	Category   string
	SearchTerm string
	PriceMin   int64
	PriceMax   int64
}

// Matches checks the entry against the filter.
func (f CatalogFilter) Matches(e CatalogEntry) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.SearchTerm != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.SearchTerm)) {
		return false
	}
	if f.PriceMin > 0 && e.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && e.Price > f.PriceMax {
		return false
	}
	return true
}
