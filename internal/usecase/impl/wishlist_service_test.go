package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/infra/memory"
)

func TestWishlistService_ToggleAddsAndRemoves(t *testing.T) {
	svc := NewWishlistService(memory.NewSessionStore(), testCatalog(), discardLogger())
	ctx := context.Background()

	view, err := svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)

	view, err = svc.Toggle(ctx, "s1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)

	// Toggling again removes the product.
	view, err = svc.Toggle(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, int64(2), view.Products[0].ID)
}

func TestWishlistService_Toggle_UnknownProduct(t *testing.T) {
	svc := NewWishlistService(memory.NewSessionStore(), testCatalog(), discardLogger())

	_, err := svc.Toggle(context.Background(), "s1", 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_GetWishlist_EmptyByDefault(t *testing.T) {
	svc := NewWishlistService(memory.NewSessionStore(), testCatalog(), discardLogger())

	view, err := svc.GetWishlist(context.Background(), "s1")
	require.NoError(t, err)
	assert.Zero(t, view.Count)
	assert.Empty(t, view.Products)
}
