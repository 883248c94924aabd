package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"
)

func TestCatalogService_ListProducts_NoFilterReturnsAll(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())

	products, err := svc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCatalogService_ListProducts_QueryMatchesNameOrCategory(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())
	ctx := context.Background()

	byName, err := svc.ListProducts(ctx, &usecase.ProductFilter{Query: "ruby"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, int64(2), byName[0].ID)

	byCategory, err := svc.ListProducts(ctx, &usecase.ProductFilter{Query: "hair"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, int64(3), byCategory[0].ID)
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())
	ctx := context.Background()

	filtered, err := svc.ListProducts(ctx, &usecase.ProductFilter{Category: "Earrings"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)

	all, err := svc.ListProducts(ctx, &usecase.ProductFilter{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService_ListProducts_QueryAndCategoryCombine(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())

	filtered, err := svc.ListProducts(context.Background(), &usecase.ProductFilter{Query: "pearl", Category: "Earrings"})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())
	ctx := context.Background()

	product, err := svc.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ruby Red Lipstick", product.Name)

	_, err = svc.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategories_FirstSeenOrder(t *testing.T) {
	svc := NewCatalogService(testCatalog(), discardLogger())

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Earrings", "Lipstick", "Hair Clips"}, categories)
}
