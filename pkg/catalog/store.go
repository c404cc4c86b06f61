// Package catalog holds the hardware inventory in memory. The store is
// safe for concurrent request handlers; items themselves are treated as
// immutable once added.
package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

var ErrNotFound = errors.New("hardware item not found")

// Query narrows a Search. Zero values mean "no constraint"; MaxPrice of
// zero is treated as unbounded.
type Query struct {
	Text     string
	Category models.Category
	MinPrice float64
	MaxPrice float64
	InStock  bool
}

// Page describes pagination and ordering for Category listings.
type Page struct {
	Number int
	Limit  int
	Sort   string // "price" or "name"
	Desc   bool
}

type Store struct {
	mu    sync.RWMutex
	items map[string]models.HardwareItem
	order []string
}

func NewStore() *Store {
	return &Store{
		items: map[string]models.HardwareItem{},
	}
}

// Add inserts or replaces an item. Items with an unknown category are
// rejected so a malformed crawl cannot poison the catalog.
func (s *Store) Add(item models.HardwareItem) error {
	if !item.Category.Valid() {
		_, err := models.ParseCategory(string(item.Category))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[item.ID]; !exists {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	return nil
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (models.HardwareItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return models.HardwareItem{}, ErrNotFound
	}
	return item, nil
}

// Categories lists the distinct categories present in the catalog, in
// slot order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	present := map[models.Category]bool{}
	for _, item := range s.items {
		present[item.Category] = true
	}

	out := []models.Category{}
	for _, c := range models.Categories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// Category returns one page of a category listing plus the total match
// count. Unknown sort keys fall back to price.
func (s *Store) Category(category models.Category, page Page) ([]models.HardwareItem, int) {
	s.mu.RLock()
	matched := s.collect(func(item models.HardwareItem) bool {
		return item.Category == category
	})
	s.mu.RUnlock()

	sortItems(matched, page.Sort, page.Desc)
	return paginate(matched, page.Number, page.Limit), len(matched)
}

// Search returns all items matching the query, cheapest first.
func (s *Store) Search(q Query) []models.HardwareItem {
	text := strings.ToLower(q.Text)

	s.mu.RLock()
	matched := s.collect(func(item models.HardwareItem) bool {
		if q.Category != "" && item.Category != q.Category {
			return false
		}
		if item.Price < q.MinPrice {
			return false
		}
		if q.MaxPrice > 0 && item.Price > q.MaxPrice {
			return false
		}
		if q.InStock && item.Stock <= 0 {
			return false
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(item.Name), text) &&
			!strings.Contains(strings.ToLower(item.Brand), text) &&
			!strings.Contains(strings.ToLower(item.Model), text) {
			return false
		}
		return true
	})
	s.mu.RUnlock()

	sortItems(matched, "price", false)
	return matched
}

// Len reports the number of items in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// collect must be called with the lock held; iteration follows insertion
// order so listings are stable between calls.
func (s *Store) collect(keep func(models.HardwareItem) bool) []models.HardwareItem {
	matched := []models.HardwareItem{}
	for _, id := range s.order {
		if item := s.items[id]; keep(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

func sortItems(items []models.HardwareItem, key string, desc bool) {
	less := func(a, b models.HardwareItem) bool { return a.Price < b.Price }
	if key == "name" {
		less = func(a, b models.HardwareItem) bool { return a.Name < b.Name }
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func paginate(items []models.HardwareItem, number, limit int) []models.HardwareItem {
	if number < 1 {
		number = 1
	}
	if limit <= 0 {
		limit = 20
	}
	start := (number - 1) * limit
	if start >= len(items) {
		return []models.HardwareItem{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
