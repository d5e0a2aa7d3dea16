package service

import (
	"context"
	"time"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/repository"
)

// ScoringRules holds the signed trust-score deltas per outcome.
type ScoringRules struct {
	ReturnOnTime int
	ReturnLate   int
	Damage       int
	GoodRating   int
	BadRating    int
}

// DefaultScoringRules match the documented defaults: +5 for a clean
// return, -20 for late returns and damage, +2/-5 for good/bad ratings.
func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		ReturnOnTime: 5,
		ReturnLate:   -20,
		Damage:       -20,
		GoodRating:   2,
		BadRating:    -5,
	}
}

type ledgerService struct {
	store   repository.StoreRepository
	scoring ScoringRules
	now     func() time.Time
}

func NewLedgerService(store repository.StoreRepository, scoring ScoringRules) LedgerService {
	return &ledgerService{store: store, scoring: scoring, now: time.Now}
}

// UpdateScore applies one lending-outcome transition to a checkout and
// adjusts both parties' trust scores. The three return-family actions
// (return_on_time, return_late, damage) are terminal for the checkout
// and put the tool back to Available; rate leaves the checkout alone
// and appends a Rating record. Negative deltas clamp at zero.
func (s *ledgerService) UpdateScore(ctx context.Context, checkoutID int, action domain.ScoreAction, rating, borrowerID, lenderID int) (*domain.ScoreResult, error) {
	var result domain.ScoreResult
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		checkout := doc.FindCheckoutByID(checkoutID)
		if checkout == nil {
			return domain.ErrCheckoutNotFound
		}
		borrower := doc.FindUserByID(borrowerID)
		lender := doc.FindUserByID(lenderID)
		if borrower == nil || lender == nil {
			return domain.ErrUserNotFound
		}

		scoreChange := 0
		returned := false

		switch action {
		case domain.ActionReturnOnTime:
			scoreChange = s.scoring.ReturnOnTime
			borrower.ApplyScoreDelta(scoreChange)
			lender.ApplyScoreDelta(scoreChange)
			checkout.Status = domain.CheckoutStatusReturned
			returned = true
		case domain.ActionReturnLate:
			scoreChange = s.scoring.ReturnLate
			borrower.ApplyScoreDelta(scoreChange)
			lender.ApplyScoreDelta(scoreChange)
			checkout.Status = domain.CheckoutStatusReturnedLate
			returned = true
		case domain.ActionDamage:
			scoreChange = s.scoring.Damage
			borrower.ApplyScoreDelta(scoreChange)
			lender.ApplyScoreDelta(scoreChange)
			checkout.Status = domain.CheckoutStatusReturnedDamaged
			returned = true
		case domain.ActionRate:
			if rating >= 4 {
				scoreChange = s.scoring.GoodRating
			} else if rating <= 2 {
				scoreChange = s.scoring.BadRating
			}
			borrower.ApplyScoreDelta(scoreChange)
			doc.Ratings = append(doc.Ratings, domain.Rating{
				ID:         doc.NextRatingID(),
				CheckoutID: checkoutID,
				BorrowerID: borrowerID,
				LenderID:   lenderID,
				Rating:     rating,
				Timestamp:  s.now().UTC().Format(time.RFC3339),
			})
		default:
			return domain.ErrInvalidAction
		}

		if returned {
			// The tool goes back on the shelf even when its record has
			// gone missing; a dangling toolID is not an error here.
			if tool := doc.FindToolByID(checkout.ToolID); tool != nil {
				tool.Status = domain.ToolStatusAvailable
			}
		}

		result = domain.ScoreResult{
			BorrowerScore: borrower.TrustScore,
			LenderScore:   lender.TrustScore,
			ScoreChange:   scoreChange,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
