package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOfficialProduct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewOfficialProduct("Leash", "accessories", 40, 5, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(40), p.Price)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		_, err := NewOfficialProduct("Leash", "accessories", 0, 5, "")
		assert.Error(t, err)
		_, err = NewOfficialProduct("Leash", "accessories", -10, 5, "")
		assert.Error(t, err)
	})

	t.Run("GaragemCategoryReserved", func(t *testing.T) {
		_, err := NewOfficialProduct("Leash", CategoryGarage, 40, 5, "")
		assert.Error(t, err)
	})
}

func TestGarageItem_Resolve(t *testing.T) {
	item, err := NewGarageItem("ana@example.com", "Crate", 80, "")
	assert.NoError(t, err)
	assert.Equal(t, ApprovalPending, item.Status)

	assert.NoError(t, item.Resolve(ApprovalApproved))
	assert.Equal(t, ApprovalApproved, item.Status)
	assert.Equal(t, 2, item.Version)

	// Same decision again must not bump the version.
	assert.NoError(t, item.Resolve(ApprovalApproved))
	assert.Equal(t, 2, item.Version)

	assert.Error(t, item.Resolve(ApprovalPending))
}

func TestCatalogFilter_Matches(t *testing.T) {
	official := CatalogEntry{Source: SourceOfficial, Name: "Premium Dog Food", Category: "food", Price: 50}
	garage := CatalogEntry{Source: SourceGarage, Name: "Used Dog Crate", Category: CategoryGarage, Price: 80}

	t.Run("EmptyFilterMatchesAll", func(t *testing.T) {
		f := CatalogFilter{}
		assert.True(t, f.Matches(official))
		assert.True(t, f.Matches(garage))
	})

	t.Run("GaragemCategory", func(t *testing.T) {
		f := CatalogFilter{Category: CategoryGarage}
		assert.False(t, f.Matches(official))
		assert.True(t, f.Matches(garage))
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		f := CatalogFilter{SearchTerm: "DOG"}
		assert.True(t, f.Matches(official))
		assert.True(t, f.Matches(garage))
		f = CatalogFilter{SearchTerm: "cat"}
		assert.False(t, f.Matches(official))
	})

	t.Run("PriceRangeConjunctive", func(t *testing.T) {
		f := CatalogFilter{SearchTerm: "dog", PriceMin: 60, PriceMax: 100}
		assert.False(t, f.Matches(official))
		assert.True(t, f.Matches(garage))
	})
}
