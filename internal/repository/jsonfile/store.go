package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/logger"
	"lendify-backend/internal/repository"
)

// Store persists the whole document as one JSON file. A process-wide
// mutex serializes read-modify-write cycles; the file itself is the
// only durable state.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ repository.StoreRepository = (*Store)(nil)

// Load returns the current document. If the file does not exist yet the
// seed dataset is written first, so callers always see a populated store.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save rewrites the whole document.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn on the freshly loaded document and persists the result,
// holding the lock across the whole read-modify-write cycle.
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logger.Info("Datastore not found, seeding", "path", s.path)
		doc, seedErr := SeedDocument()
		if seedErr != nil {
			return nil, fmt.Errorf("failed to seed datastore: %w", seedErr)
		}
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read datastore: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse datastore: %w", err)
	}
	return &doc, nil
}

// save marshals with 2-space indentation and replaces the file via a
// temp-file rename, so a crash mid-write cannot leave a torn document.
func (s *Store) save(doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize datastore: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create datastore directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp datastore file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write datastore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write datastore: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace datastore: %w", err)
	}
	return nil
}
