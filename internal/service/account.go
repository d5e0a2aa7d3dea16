package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/repository"
	"lendify-backend/internal/security"
)

// Default signup location (lower Manhattan) used when coordinates are omitted.
var defaultLocation = domain.Location{Lat: 40.7128, Lng: -74.0060}

type accountService struct {
	store  repository.StoreRepository
	tokens security.TokenManager
}

func NewAccountService(store repository.StoreRepository, tokens security.TokenManager) AccountService {
	return &accountService{store: store, tokens: tokens}
}

func (s *accountService) Signup(ctx context.Context, name, email, password string, lat, lng *float64) (*domain.PublicUser, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	loc := defaultLocation
	if lat != nil && lng != nil {
		loc = domain.Location{Lat: *lat, Lng: *lng}
	}

	var created domain.User
	err = s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.FindUserByEmail(email) != nil {
			return domain.ErrEmailTaken
		}
		created = domain.User{
			ID:           doc.NextUserID(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Location:     loc,
			TrustScore:   domain.DefaultTrustScore,
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(created.ID, created.Email)
	if err != nil {
		return nil, "", err
	}
	return created.Public(), token, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.PublicUser, string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	// A single generic error for unknown email and wrong password alike,
	// so the endpoint cannot be used for account enumeration.
	user := doc.FindUserByEmail(email)
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user.Public(), token, nil
}

func (s *accountService) Profile(ctx context.Context, userID int) (*domain.PublicUser, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := doc.FindUserByID(userID)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user.Public(), nil
}
