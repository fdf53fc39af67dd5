package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/sumire/portfolio-cms/internal/domain"
)

// Store is the JSON-document-backed data store. The entire document is
// re-read from disk on every access and rewritten wholesale on every
// mutation; a single mutex serializes writers so concurrent
// read-modify-write cycles cannot lose updates.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store backed by the file at path. If the file does not
// exist it is created with an empty document, so a fresh deployment starts
// with empty collections rather than a read error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		if err := s.write(domain.NewDocument()); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat store file: %w", err)
	}

	// Fail fast on an unreadable document instead of at first request.
	if _, err := s.read(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// View runs fn against a snapshot of the document. Mutations made by fn are
// discarded.
func (s *Store) View(fn func(doc *domain.Document) error) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against the document and persists the result. The whole
// read-modify-write cycle holds the store lock, so updates from concurrent
// requests are applied one at a time and none are lost.
func (s *Store) Update(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}
	return doc, nil
}

// write persists the document via a temp file and rename, so a crash
// mid-write never leaves a half-written store behind.
func (s *Store) write(doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
