package service

import (
	"context"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/geo"
	"lendify-backend/internal/repository"
)

type directoryService struct {
	store       repository.StoreRepository
	radiusMiles float64
}

func NewDirectoryService(store repository.StoreRepository, radiusMiles float64) DirectoryService {
	return &directoryService{store: store, radiusMiles: radiusMiles}
}

// NearbyTools returns available tools within the configured radius of
// the query point, in store order, joined with owner metadata. A tool
// whose owner record is missing is listed with named defaults rather
// than dropped.
func (s *directoryService) NearbyTools(ctx context.Context, lat, lng float64) ([]domain.NearbyTool, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	results := []domain.NearbyTool{}
	for i := range doc.Tools {
		tool := &doc.Tools[i]
		if tool.Status != domain.ToolStatusAvailable {
			continue
		}
		dist := geo.Distance(lat, lng, tool.Location.Lat, tool.Location.Lng)
		if dist > s.radiusMiles {
			continue
		}

		entry := domain.NearbyTool{
			Tool:            *tool,
			OwnerName:       domain.UnknownOwnerName,
			OwnerTrustScore: domain.UnknownOwnerTrustScore,
			Distance:        dist,
		}
		if owner := doc.FindUserByID(tool.OwnerID); owner != nil {
			entry.OwnerName = owner.Name
			entry.OwnerTrustScore = owner.TrustScore
		}
		results = append(results, entry)
	}
	return results, nil
}

// MyTools returns the tools owned by userID plus every checkout where
// the user is the lender (tool owner) or the borrower.
func (s *directoryService) MyTools(ctx context.Context, userID int) ([]domain.Tool, []domain.Checkout, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	tools := []domain.Tool{}
	owned := map[int]bool{}
	for i := range doc.Tools {
		if doc.Tools[i].OwnerID == userID {
			tools = append(tools, doc.Tools[i])
			owned[doc.Tools[i].ID] = true
		}
	}

	checkouts := []domain.Checkout{}
	for i := range doc.Checkouts {
		c := &doc.Checkouts[i]
		if owned[c.ToolID] || c.BorrowerID == userID {
			checkouts = append(checkouts, *c)
		}
	}
	return tools, checkouts, nil
}
