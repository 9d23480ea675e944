// Package store owns the persisted dataset: one JSON document holding the
// product and transaction arrays.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/pkg/config"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"go.uber.org/zap"
)

// ErrCorruptDataset reports that the dataset file exists but could not be
// read or decoded. Callers still receive an empty dataset so the service
// keeps serving; a missing file is not an error.
var ErrCorruptDataset = errors.New("dataset file is corrupt")

// Store is the dataset storage abstraction. Mutate serializes the whole
// read-modify-write cycle so concurrent writers cannot clobber each other.
type Store interface {
	Load() (model.Dataset, error)
	Save(model.Dataset) error
	Mutate(func(*model.Dataset) error) error
}

// FileStore persists the dataset to a single JSON file, rewriting the whole
// document on every save.
type FileStore struct {
	mu   sync.RWMutex
	path string

	// OnFallback is invoked when a corrupt file degrades to the empty
	// dataset during Mutate.
	OnFallback func(error)
}

// NewFileStore creates a store backed by the file at path. The file is not
// created until the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full dataset from disk. A missing file yields the empty
// dataset with no error; an unreadable or undecodable file yields the empty
// dataset and ErrCorruptDataset.
func (s *FileStore) Load() (model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *FileStore) load() (model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewDataset(), nil
		}
		return model.NewDataset(), fmt.Errorf("%w: %v", ErrCorruptDataset, err)
	}
	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return model.NewDataset(), fmt.Errorf("%w: %v", ErrCorruptDataset, err)
	}
	ds.Normalize()
	return ds, nil
}

// Save serializes the dataset and overwrites the persisted file.
func (s *FileStore) Save(ds model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ds)
}

func (s *FileStore) save(ds model.Dataset) error {
	ds.Normalize()
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Mutate loads the dataset, applies fn, and saves the result, holding the
// write lock for the whole cycle. A corrupt file degrades to the empty
// dataset after notifying OnFallback.
func (s *FileStore) Mutate(fn func(*model.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, err := s.load()
	if err != nil && s.OnFallback != nil {
		s.OnFallback(err)
	}
	if err := fn(&ds); err != nil {
		return err
	}
	return s.save(ds)
}

// MemStore is an in-memory Store used by tests.
type MemStore struct {
	mu sync.Mutex
	ds model.Dataset
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{ds: model.NewDataset()}
}

func (s *MemStore) Load() (model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.ds), nil
}

func (s *MemStore) Save(ds model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds.Normalize()
	s.ds = clone(ds)
	return nil
}

func (s *MemStore) Mutate(fn func(*model.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds := clone(s.ds)
	if err := fn(&ds); err != nil {
		return err
	}
	ds.Normalize()
	s.ds = ds
	return nil
}

func clone(ds model.Dataset) model.Dataset {
	out := model.Dataset{
		Products:     make([]model.Product, len(ds.Products)),
		Transactions: make([]model.Transaction, len(ds.Transactions)),
	}
	copy(out.Products, ds.Products)
	copy(out.Transactions, ds.Transactions)
	return out
}

var current Store

// Init initializes the dataset store from configuration
func Init(cfg *config.Config) {
	fs := NewFileStore(cfg.Store.FilePath)
	fs.OnFallback = func(err error) {
		logger.GetLogger().Warn("Store file unreadable, continuing with empty dataset",
			zap.String("file", cfg.Store.FilePath),
			zap.Error(err))
		prometheus.RecordDatasetFallback()
	}
	current = fs
}

// Get returns the store instance
func Get() Store {
	return current
}

// Set replaces the store instance. Tests use this to inject a MemStore.
func Set(s Store) {
	current = s
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NextID returns a unique record id. Ids are millisecond-epoch values,
// bumped past the previous id when two records are created in the same
// instant.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
