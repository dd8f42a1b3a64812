package filter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishikeshk9/astudio/internal/domain/models"
)

func productPage() []models.ProductRecord {
	return []models.ProductRecord{
		{ID: 1, Title: "MacBook Pro", Brand: "Apple", Category: "laptops", Price: decimal.NewFromFloat(1749), Stock: 12, Rating: 4.57},
		{ID: 2, Title: "iPhone 9", Brand: "Apple", Category: "smartphones", Price: decimal.NewFromFloat(549), Stock: 94, Rating: 4.69},
		{ID: 3, Title: "Samsung Universe 9", Brand: "Samsung", Category: "smartphones", Price: decimal.NewFromFloat(1249), Stock: 36, Rating: 4.09},
		{ID: 4, Title: "Surface Laptop 4", Brand: "Microsoft", Category: "Laptops", Price: decimal.NewFromFloat(1499), Stock: 68, Rating: 4.43},
	}
}

func TestProductFiltersIdentity(t *testing.T) {
	page := productPage()

	assert.Equal(t, page, ProductFilters{}.Apply(page))
	assert.Equal(t, page, ProductFilters{Tab: TabAll}.Apply(page))

	f := ProductFilters{Brands: []string{"Apple"}}
	once := f.Apply(page)
	assert.Equal(t, once, f.Apply(once))
}

func TestProductFiltersTab(t *testing.T) {
	// Any non-ALL tab narrows to the laptops category, case-insensitively.
	out := ProductFilters{Tab: "Laptops"}.Apply(productPage())
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 4, out[1].ID)
}

func TestProductFiltersTitle(t *testing.T) {
	out := ProductFilters{Title: "  laptop "}.Apply(productPage())
	require.Len(t, out, 1)
	assert.Equal(t, "Surface Laptop 4", out[0].Title)
}

func TestProductFiltersBrandAndCategory(t *testing.T) {
	out := ProductFilters{Brands: []string{"Apple", "Samsung"}}.Apply(productPage())
	require.Len(t, out, 3)

	// Set membership on the category field is exact, unlike the tab filter.
	out = ProductFilters{Categories: []string{"laptops"}}.Apply(productPage())
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)

	// Predicates are ANDed.
	out = ProductFilters{Brands: []string{"Apple"}, Categories: []string{"smartphones"}}.Apply(productPage())
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)
}

func TestProductGlobalSearch(t *testing.T) {
	out := Search(productPage(), "universe")
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)

	// Price is matched through its decimal string form.
	out = Search(productPage(), "1749")
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}
