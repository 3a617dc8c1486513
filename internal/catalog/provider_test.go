package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Phone", Price: 45900, Category: "electronics", Rating: 4.8},
		{ID: 2, Name: "Laptop", Price: 35900, Category: "electronics", Rating: 4.9},
		{ID: 3, Name: "Sneakers", Price: 3200, Category: "sports", Rating: 4.6},
		{ID: 4, Name: "Serum", Price: 2800, Category: "beauty", Rating: 4.5},
		{ID: 5, Name: "Jacket", Price: 1200, Category: "fashion", Rating: 4.4},
	}
}

func TestProducts_ReturnsSeededOrder(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	products, err := p.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(5), products[4].ID)
}

func TestProductByID_Found(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	product, err := p.ProductByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Sneakers", product.Name)
}

func TestProductByID_NotFound(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	_, err := p.ProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearch_MatchesNameAndCategory(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)
	ctx := context.Background()

	byName, err := p.Search(ctx, "lap")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Laptop", byName[0].Name)

	byCategory, err := p.Search(ctx, "ELECTRONICS")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
}

func TestSearch_NoMatches(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	matched, err := p.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestList_CategoryFilter(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	result, err := p.List(context.Background(), ListQuery{Category: "electronics"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "Phone", result.Products[0].Name)
}

func TestList_AllCategoryMatchesEverything(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	result, err := p.List(context.Background(), ListQuery{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
}

func TestList_PriceRange(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)

	result, err := p.List(context.Background(), ListQuery{MinPrice: 2000, MaxPrice: 10000})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "Sneakers", result.Products[0].Name)
	assert.Equal(t, "Serum", result.Products[1].Name)
}

func TestList_SortModes(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)
	ctx := context.Background()

	low, err := p.List(ctx, ListQuery{SortBy: SortPriceLow})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), low.Products[0].Price)

	high, err := p.List(ctx, ListQuery{SortBy: SortPriceHigh})
	require.NoError(t, err)
	assert.Equal(t, int64(45900), high.Products[0].Price)

	rating, err := p.List(ctx, ListQuery{SortBy: SortRating})
	require.NoError(t, err)
	assert.Equal(t, "Laptop", rating.Products[0].Name)

	newest, err := p.List(ctx, ListQuery{SortBy: SortNewest})
	require.NoError(t, err)
	assert.Equal(t, int64(5), newest.Products[0].ID)
}

func TestList_Pagination(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 0)
	ctx := context.Background()

	page1, err := p.List(ctx, ListQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page1.Total)
	require.Len(t, page1.Products, 2)
	assert.Equal(t, int64(1), page1.Products[0].ID)

	page3, err := p.List(ctx, ListQuery{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page3.Products, 1)
	assert.Equal(t, int64(5), page3.Products[0].ID)

	beyond, err := p.List(ctx, ListQuery{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Products)
	assert.Equal(t, 5, beyond.Total)
}

func TestProductByID_CancelledContextDuringDelay(t *testing.T) {
	p := NewProviderWithProducts(testProducts(), 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.ProductByID(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 8, Product{Price: 45900, OriginalPrice: 49900}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 100}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 100, OriginalPrice: 100}.DiscountPercent())
}
