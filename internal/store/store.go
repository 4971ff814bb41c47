// Package store persists completed and abandoned screening records to a
// single JSON collection file. The whole collection is read, appended to and
// rewritten on every save, so at most one writer at a time is assumed.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/candidate"
)

const (
	// DefaultDir is the directory holding the candidates file.
	DefaultDir = "data"
	// DefaultFile is the collection file name inside the data directory.
	DefaultFile = "candidates.json"

	idPrefix          = "CAND_"
	idTimestampLayout = "20060102150405"
)

// Store is a file-backed, append-only collection of candidate records.
type Store struct {
	path   string
	logger *zap.Logger

	// now is swappable for deterministic IDs in tests.
	now func() time.Time
}

// New creates a store rooted at dir/file, creating the directory and an empty
// collection document when they do not exist yet.
func New(dir, file string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if file == "" {
		file = DefaultFile
	}

	s := &Store{
		path:   filepath.Join(dir, file),
		logger: logger,
		now:    time.Now,
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %q: %w", dir, err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write(nil); err != nil {
			return nil, fmt.Errorf("creating empty collection: %w", err)
		}
	}

	return s, nil
}

// Path returns the location of the backing collection file.
func (s *Store) Path() string {
	return s.path
}

// Save appends a timestamped, ID-stamped copy of the record to the
// collection. It returns false on any I/O failure and leaves the collection
// unchanged; errors never escape the store boundary.
func (s *Store) Save(record *candidate.Record) bool {
	if record == nil {
		return false
	}

	saved := s.now()
	stored := &candidate.Stored{
		Record:    *record,
		ID:        s.newCandidateID(saved),
		Timestamp: saved.Format(time.RFC3339),
	}

	existing := s.LoadAll()
	existing.Items = append(existing.Items, stored)

	if err := s.write(existing.Items); err != nil {
		s.logger.Error("saving candidate record",
			zap.String("path", s.path),
			zap.String("candidate_id", stored.ID),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("candidate record saved",
		zap.String("candidate_id", stored.ID),
		zap.Bool("complete", record.IsComplete()),
	)

	return true
}

// LoadAll returns every stored candidate in insertion order. A missing or
// unreadable file and corrupt contents are all treated as an empty
// collection, never as an error.
func (s *Store) LoadAll() *candidate.Collection {
	collection := &candidate.Collection{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading collection file, treating as empty",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return collection
	}

	// Decode loosely first so one malformed entry or a legacy field type
	// does not discard the whole collection.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("collection file is not valid JSON, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return collection
	}

	for _, entry := range raw {
		stored := &candidate.Stored{}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           stored,
			TagName:          "json",
			Squash:           true,
			WeaklyTypedInput: true,
		})
		if err != nil {
			continue
		}
		if err := decoder.Decode(entry); err != nil {
			s.logger.Warn("skipping malformed candidate entry", zap.Error(err))
			continue
		}
		collection.Items = append(collection.Items, stored)
	}

	return collection
}

// FindByID returns the stored candidate with the given ID, or nil when the
// ID is unknown.
func (s *Store) FindByID(id string) *candidate.Stored {
	return s.LoadAll().FindByID(id)
}

// write replaces the collection file via a temp file and rename, so a failed
// write never clobbers the existing collection.
func (s *Store) write(items []*candidate.Stored) error {
	if items == nil {
		items = []*candidate.Stored{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}

// newCandidateID builds a CAND_<YYYYMMDDHHMMSS> identifier. Uniqueness is
// only second-granular; two saves within the same second collide.
func (s *Store) newCandidateID(t time.Time) string {
	return idPrefix + t.Format(idTimestampLayout)
}
