package service

import (
	"context"

	"lendify-backend/internal/domain"
)

type AccountService interface {
	Signup(ctx context.Context, name, email, password string, lat, lng *float64) (*domain.PublicUser, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.PublicUser, string, error)                          // user, access token
	Profile(ctx context.Context, userID int) (*domain.PublicUser, error)
}

type DirectoryService interface {
	NearbyTools(ctx context.Context, lat, lng float64) ([]domain.NearbyTool, error)
	MyTools(ctx context.Context, userID int) ([]domain.Tool, []domain.Checkout, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, qrToken string, borrowerID int) (*domain.Checkout, error)
}

type LedgerService interface {
	UpdateScore(ctx context.Context, checkoutID int, action domain.ScoreAction, rating, borrowerID, lenderID int) (*domain.ScoreResult, error)
}
