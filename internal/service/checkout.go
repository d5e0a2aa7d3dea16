package service

import (
	"context"
	"time"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/repository"
)

type checkoutService struct {
	store repository.StoreRepository
	now   func() time.Time
}

func NewCheckoutService(store repository.StoreRepository) CheckoutService {
	return &checkoutService{store: store, now: time.Now}
}

// Checkout moves a tool from Available to Rented and appends the Active
// checkout record for it. The qrToken must match a listed tool and the
// tool must not already be out.
func (s *checkoutService) Checkout(ctx context.Context, qrToken string, borrowerID int) (*domain.Checkout, error) {
	var created domain.Checkout
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		tool := doc.FindToolByQRToken(qrToken)
		if tool == nil {
			return domain.ErrToolNotFound
		}
		if tool.Status != domain.ToolStatusAvailable {
			return domain.ErrToolNotAvailable
		}

		tool.Status = domain.ToolStatusRented
		created = domain.Checkout{
			ID:           doc.NextCheckoutID(),
			ToolID:       tool.ID,
			ToolName:     tool.Name,
			BorrowerID:   borrowerID,
			LenderID:     tool.OwnerID,
			QRToken:      qrToken,
			CheckoutTime: s.now().UTC().Format(time.RFC3339),
			Status:       domain.CheckoutStatusActive,
		}
		doc.Checkouts = append(doc.Checkouts, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
