package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/hirewire/hirewire/pkg/logger"
)

// Collection names persisted under the data directory, one JSON array file each.
const (
	Companies     = "company"
	Candidates    = "candidate"
	Jobs          = "jobs"
	Applications  = "applications"
	Profiles      = "profiles"
	Notifications = "notifications"
	Interviews    = "interviews"
)

// AllCollections lists every known collection, used by reset and stats.
var AllCollections = []string{
	Companies, Candidates, Jobs, Applications, Profiles, Notifications, Interviews,
}

// Store reads and rewrites whole JSON record collections on local storage.
//
// The mutex only keeps this process's handlers from tearing a file mid-write;
// a read-modify-write sequence spanning Load and Save still loses updates when
// interleaved with another writer (last write wins on the whole collection).
// That is the documented storage contract, not an oversight.
type Store struct {
	dir string
	mu  sync.Mutex
	log *zap.Logger
}

// New creates a store rooted at dir, creating the directory when missing.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data directory: %w", err)
	}
	return &Store{
		dir: dir,
		log: logger.WithModule("store"),
	}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// Load decodes a collection into out, which must be a pointer to a slice.
// A missing, empty, or corrupt file yields an empty slice; corrupt content is
// additionally rewritten to an empty collection on disk.
func (s *Store) Load(collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(collection, out)
}

// Save rewrites the whole collection with the provided records.
func (s *Store) Save(collection string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(collection, records)
}

// NextID returns the next store-assigned identifier for the collection:
// max(integer ids)+1 as a decimal string, "1" when the collection is empty,
// or count+1 when any existing id fails to parse.
func (s *Store) NextID(collection string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []struct {
		ID string `json:"id"`
	}
	if err := s.loadLocked(collection, &records); err != nil || len(records) == 0 {
		return "1"
	}

	maxID := 0
	for _, record := range records {
		n, err := strconv.Atoi(record.ID)
		if err != nil {
			return strconv.Itoa(len(records) + 1)
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

// Count returns the number of records in a collection.
func (s *Store) Count(collection string) int {
	var records []json.RawMessage
	if err := s.Load(collection, &records); err != nil {
		return 0
	}
	return len(records)
}

// Reset truncates a collection to an empty array.
func (s *Store) Reset(collection string) error {
	return s.Save(collection, []struct{}{})
}

func (s *Store) loadLocked(collection string, out any) error {
	path := s.path(collection)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return json.Unmarshal([]byte("[]"), out)
	}
	if err != nil {
		return fmt.Errorf("store: read %s: %w", collection, err)
	}

	if len(data) == 0 {
		return json.Unmarshal([]byte("[]"), out)
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("corrupt collection replaced with empty list",
			zap.String("collection", collection), zap.Error(err))
		if werr := s.saveLocked(collection, []struct{}{}); werr != nil {
			return werr
		}
		return json.Unmarshal([]byte("[]"), out)
	}
	return nil
}

func (s *Store) saveLocked(collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
