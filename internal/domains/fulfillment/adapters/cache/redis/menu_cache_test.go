package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
)

type stubSource struct {
	listings []catalogdomain.MenuListing
	calls    int
}

func (s *stubSource) ListMenuListings(context.Context) ([]catalogdomain.MenuListing, error) {
	s.calls++
	return s.listings, nil
}

func TestMenuCache_NilClientPassesThrough(t *testing.T) {
	inner := &stubSource{listings: []catalogdomain.MenuListing{
		{RestaurantID: 1, RestaurantName: "Mario", ProductID: 10, Availability: true},
	}}
	cache := NewMenuCache(inner, nil, 0)

	first, err := cache.ListMenuListings(context.Background())
	require.NoError(t, err)
	second, err := cache.ListMenuListings(context.Background())
	require.NoError(t, err)

	require.Equal(t, inner.listings, first)
	require.Equal(t, first, second)
	require.Equal(t, 2, inner.calls, "without a client every read hits the source")
}

func TestMenuCache_NilClientInvalidateIsNoop(t *testing.T) {
	cache := NewMenuCache(&stubSource{}, nil, 0)
	require.NotPanics(t, func() { cache.Invalidate(context.Background()) })
}

func TestMenuCache_NotConfigured(t *testing.T) {
	var cache *MenuCache
	_, err := cache.ListMenuListings(context.Background())
	require.Error(t, err)
}
