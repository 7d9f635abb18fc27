// Package foodfile loads the nutrition catalog from a JSON file and
// keeps it fresh by watching the file for out-of-band updates.
package foodfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
	"github.com/madkurv-labs/varesearch-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.FoodStore = (*Store)(nil)

// foodRecord is one JSON row of the catalog file.
type foodRecord struct {
	ID       string  `json:"id"`
	NameDa   string  `json:"name_da"`
	NameEn   string  `json:"name_en"`
	Category string  `json:"category"`
	Kcal     float64 `json:"kcal"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Store serves the food catalog from a JSON file. Reloads happen on
// file change; a failed reload keeps the last good catalog.
type Store struct {
	path string

	mu    sync.RWMutex
	items []domain.FoodItem
}

// NewStore loads the catalog file at path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// All returns every food item in the catalog.
func (s *Store) All(_ context.Context) ([]domain.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.FoodItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

// Len returns the current catalog size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// load reads and parses the catalog file, replacing the item set.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read food catalog %s: %w", s.path, err)
	}

	var records []foodRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse food catalog %s: %w", s.path, err)
	}

	items := make([]domain.FoodItem, len(records))
	for i, r := range records {
		items[i] = domain.FoodItem{
			ID:             r.ID,
			NameDa:         r.NameDa,
			NameEn:         r.NameEn,
			Category:       r.Category,
			KcalPer100g:    r.Kcal,
			ProteinPer100g: r.Protein,
			FatPer100g:     r.Fat,
			CarbsPer100g:   r.Carbs,
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logger.Debug("Food catalog loaded: %d items from %s", len(items), s.path)
	return nil
}

// Watch reloads the catalog whenever the file changes, until the
// context is cancelled. The parent directory is watched because most
// tools replace the file instead of writing in place.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(s.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.load(); err != nil {
					logger.Warn("Food catalog reload failed: %v", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Food catalog watcher: %v", err)
			}
		}
	}()

	return nil
}
