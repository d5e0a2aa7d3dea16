package repository

import (
	"context"

	"lendify-backend/internal/domain"
)

// StoreRepository is the whole-document storage contract: every
// operation reads or rewrites the entire document. Load seeds and
// persists a starter dataset when no document exists yet. Update runs
// fn under the store's writer lock and persists the mutated document
// unless fn returns an error, so concurrent mutations cannot overwrite
// each other.
type StoreRepository interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}
