// Package configstore keeps named, shareable builds. Saving a build
// recomputes its totals, compatibility and performance so stored results
// never drift from the selection they describe.
package configstore

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nerabuild/NeraBuild-API/internal/models"
	"github.com/nerabuild/NeraBuild-API/pkg/compat"
	"github.com/nerabuild/NeraBuild-API/pkg/perf"
)

var (
	ErrNotFound     = errors.New("configuration not found")
	ErrEmptySave    = errors.New("configuration name and items must not be empty")
	ErrNotShareable = errors.New("configuration is not public")
)

// Saved is a stored build with its computed results.
type Saved struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description,omitempty"`
	Items         []models.HardwareItem      `json:"items"`
	TotalPrice    float64                    `json:"totalPrice"`
	Performance   perf.PerformanceScore      `json:"performance"`
	Compatibility compat.CompatibilityResult `json:"compatibility"`
	Version       int                        `json:"version"`
	IsPublic      bool                       `json:"isPublic"`
	ShareID       string                     `json:"shareId,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

type Store struct {
	checker *compat.Checker
	scorer  *perf.Scorer

	mu      sync.RWMutex
	byID    map[string]Saved
	byShare map[string]string
}

func NewStore(checker *compat.Checker, scorer *perf.Scorer) *Store {
	return &Store{
		checker: checker,
		scorer:  scorer,
		byID:    map[string]Saved{},
		byShare: map[string]string{},
	}
}

// Save stores a named build. Public builds get an 8 character share id.
// The item list must group into a valid configuration.
func (s *Store) Save(name, description string, items []models.HardwareItem, isPublic bool) (Saved, error) {
	if strings.TrimSpace(name) == "" || len(items) == 0 {
		return Saved{}, ErrEmptySave
	}

	cfg, err := models.NewConfiguration(items)
	if err != nil {
		return Saved{}, err
	}

	now := time.Now().UTC()
	saved := Saved{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		Items:         items,
		TotalPrice:    cfg.TotalPrice(),
		Performance:   s.scorer.Score(cfg),
		Compatibility: s.checker.Check(cfg),
		Version:       1,
		IsPublic:      isPublic,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if isPublic {
		saved.ShareID = newShareID()
	}

	s.mu.Lock()
	s.byID[saved.ID] = saved
	if saved.ShareID != "" {
		s.byShare[saved.ShareID] = saved.ID
	}
	s.mu.Unlock()

	return saved, nil
}

// Get returns the build with the given id.
func (s *Store) Get(id string) (Saved, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	saved, ok := s.byID[id]
	if !ok {
		return Saved{}, ErrNotFound
	}
	return saved, nil
}

// GetByShareID resolves a share id. Builds that were saved private are
// never reachable this way.
func (s *Store) GetByShareID(shareID string) (Saved, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byShare[shareID]
	if !ok {
		return Saved{}, ErrNotFound
	}
	saved := s.byID[id]
	if !saved.IsPublic {
		return Saved{}, ErrNotShareable
	}
	return saved, nil
}

// List returns one page of stored builds, newest first, plus the total
// count. publicOnly of nil lists everything.
func (s *Store) List(page, limit int, publicOnly *bool) ([]Saved, int) {
	s.mu.RLock()
	all := make([]Saved, 0, len(s.byID))
	for _, saved := range s.byID {
		if publicOnly != nil && saved.IsPublic != *publicOnly {
			continue
		}
		all = append(all, saved)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(all) {
		return []Saved{}, len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all)
}

// newShareID returns a short link token. Derived from a UUID so it needs
// no coordination with the rest of the store.
func newShareID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
