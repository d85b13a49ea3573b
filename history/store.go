// Package history persists the monitor's per-source state as a JSON
// document. The store is read once at run start and written once at run
// end; the run loop is the only writer.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"menuwatch/models"
)

// Store reads and writes the history file.
type Store struct {
	path string
}

// NewStore builds a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the history file. A missing or corrupt file yields an
// empty history, never an error: a run must always be able to start.
func (s *Store) Load() *models.History {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read history file %s: %v", s.path, err)
		}
		return models.NewHistory()
	}

	var h models.History
	if err := json.Unmarshal(data, &h); err != nil {
		log.Printf("History file %s is corrupt, starting fresh: %v", s.path, err)
		return models.NewHistory()
	}
	if h.Competitors == nil {
		h.Competitors = make(map[string]*models.CompetitorRecord)
	}
	return &h
}

// Save writes the history file, stamping the last-updated time. A write
// failure aborts only the persistence step; callers log and move on.
func (s *Store) Save(h *models.History) error {
	h.LastUpdated = time.Now()

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history file %s: %w", s.path, err)
	}
	return nil
}
