package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/geo"
	"lendify-backend/internal/service"
)

const (
	queryLat = 40.7128
	queryLng = -74.0060
)

func TestDirectoryService_NearbyTools(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists available seed tools with owner join", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewDirectoryService(store, 5)

		tools, err := svc.NearbyTools(ctx, queryLat, queryLng)
		require.NoError(t, err)
		require.Len(t, tools, 6) // all seed tools sit within a mile

		drill := tools[0]
		assert.Equal(t, 1, drill.ID)
		assert.Equal(t, "Mike Johnson", drill.OwnerName)
		assert.Equal(t, 100, drill.OwnerTrustScore)
		assert.Equal(t, 0.0, drill.Distance)
	})

	t.Run("Excludes rented tools", func(t *testing.T) {
		store := newSeededStore(t)
		_, err := service.NewCheckoutService(store).Checkout(ctx, "TOOL-001-DRILL", 2)
		require.NoError(t, err)

		svc := service.NewDirectoryService(store, 5)
		tools, err := svc.NearbyTools(ctx, queryLat, queryLng)
		require.NoError(t, err)
		assert.Len(t, tools, 5)
		for _, tool := range tools {
			assert.NotEqual(t, 1, tool.ID)
			assert.Equal(t, domain.ToolStatusAvailable, tool.Status)
		}
	})

	t.Run("Radius boundary is inclusive", func(t *testing.T) {
		store := newSeededStore(t)
		// Make the radius exactly the distance to one of the tools: it
		// must still be listed.
		toolDist := geo.Distance(queryLat, queryLng, 40.7180, -74.0100)
		svc := service.NewDirectoryService(store, toolDist)

		tools, err := svc.NearbyTools(ctx, queryLat, queryLng)
		require.NoError(t, err)
		found := false
		for _, tool := range tools {
			if tool.ID == 4 {
				found = true
				assert.InDelta(t, toolDist, tool.Distance, 1e-12)
			}
		}
		assert.True(t, found, "tool exactly at the radius must be included")
	})

	t.Run("Excludes tools beyond the radius", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewDirectoryService(store, 5)

		// Query from Philadelphia: nothing within 5 miles.
		tools, err := svc.NearbyTools(ctx, 39.9526, -75.1652)
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("Missing owner falls back to named defaults", func(t *testing.T) {
		store := newSeededStore(t)
		require.NoError(t, store.Update(ctx, func(doc *domain.Document) error {
			doc.FindToolByID(1).OwnerID = 999
			return nil
		}))

		svc := service.NewDirectoryService(store, 5)
		tools, err := svc.NearbyTools(ctx, queryLat, queryLng)
		require.NoError(t, err)

		assert.Equal(t, domain.UnknownOwnerName, tools[0].OwnerName)
		assert.Equal(t, domain.UnknownOwnerTrustScore, tools[0].OwnerTrustScore)
	})
}

func TestDirectoryService_MyTools(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned tools and related checkouts", func(t *testing.T) {
		store := newSeededStore(t)
		checkoutSvc := service.NewCheckoutService(store)
		// User 2 borrows user 1's drill; user 3 borrows user 2's saw.
		_, err := checkoutSvc.Checkout(ctx, "TOOL-001-DRILL", 2)
		require.NoError(t, err)
		_, err = checkoutSvc.Checkout(ctx, "TOOL-002-SAW", 3)
		require.NoError(t, err)

		svc := service.NewDirectoryService(store, 5)
		tools, checkouts, err := svc.MyTools(ctx, 2)
		require.NoError(t, err)

		// User 2 owns the saw and the toolbox set.
		require.Len(t, tools, 2)
		assert.Equal(t, 2, tools[0].ID)
		assert.Equal(t, 6, tools[1].ID)

		// Both checkouts involve user 2: one as borrower, one as lender.
		assert.Len(t, checkouts, 2)
	})

	t.Run("User with nothing gets empty slices", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewDirectoryService(store, 5)

		tools, checkouts, err := svc.MyTools(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, tools)
		assert.Empty(t, checkouts)
	})
}
