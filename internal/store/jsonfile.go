package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// InMemory is the path value that keeps a JSON-file store entirely in
// memory. Used by tests and throwaway deployments.
const InMemory = ":memory:"

// jsonFileStore is the default EntityStore backend: the whole database is
// one JSON document of collections, held in memory and rewritten to disk on
// SaveNow. The on-disk layout matches the original db.json, so existing
// databases can be pointed at directly.
type jsonFileStore struct {
	path     string
	inMemory bool

	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
}

// NewJSONFileStore opens (or lazily creates) the JSON database at path.
// Passing [InMemory] skips disk persistence entirely.
func NewJSONFileStore(path string) (EntityStore, error) {
	s := &jsonFileStore{
		path:        path,
		inMemory:    path == InMemory,
		collections: make(map[string]map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *jsonFileStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}

	var collections map[string]map[string]json.RawMessage
	if err = json.Unmarshal(data, &collections); err != nil {
		return fmt.Errorf("decode store file: %w", err)
	}
	if collections == nil {
		collections = make(map[string]map[string]json.RawMessage)
	}

	s.collections = collections
	return nil
}

func (s *jsonFileStore) Has(_ context.Context, key string) (bool, error) {
	collection, id, err := s.parseKey(key)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	if id == "" {
		return true, nil
	}

	_, ok = records[id]
	return ok, nil
}

func (s *jsonFileStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	collection, id, err := s.parseKey(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	if id == "" {
		raw, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encode collection %q: %w", collection, err)
		}
		return raw, nil
	}

	raw, ok := records[id]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (s *jsonFileStore) Set(_ context.Context, key string, value any) error {
	collection, id, err := s.parseKey(key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		var records map[string]json.RawMessage
		if err = json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCollectionValue, collection)
		}
		if records == nil {
			records = make(map[string]json.RawMessage)
		}
		s.collections[collection] = records
		return nil
	}

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]json.RawMessage)
		s.collections[collection] = records
	}
	records[id] = raw

	return nil
}

func (s *jsonFileStore) Delete(_ context.Context, key string) error {
	collection, id, err := s.parseKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		delete(s.collections, collection)
		return nil
	}

	if records, ok := s.collections[collection]; ok {
		delete(records, id)
	}
	return nil
}

// SaveNow rewrites the whole database file. Mutations made since the last
// call are only durable after SaveNow returns.
func (s *jsonFileStore) SaveNow(_ context.Context) error {
	if s.inMemory {
		return nil
	}

	s.mu.RLock()
	payload, err := json.MarshalIndent(s.collections, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}

func (s *jsonFileStore) parseKey(key string) (collection, id string, err error) {
	if key == "" {
		return "", "", ErrEmptyKey
	}
	collection, id = splitKey(key)
	if collection == "" {
		return "", "", ErrEmptyKey
	}
	return collection, id, nil
}
