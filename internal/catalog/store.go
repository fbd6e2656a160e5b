package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avoronkov/maxcalories/internal/knapsack"
)

// ErrEmptyCatalog indicates a replacement catalog with no items.
var ErrEmptyCatalog = errors.New("catalog must contain at least one item")

var defaultMenu = knapsack.Menu{
	{Description: "spicy chicken breast", Weight: 6, Calories: 280},
	{Description: "sourdough loaf", Weight: 16, Calories: 1200},
	{Description: "aged cheddar wedge", Weight: 8, Calories: 900},
	{Description: "dark chocolate bar", Weight: 3.5, Calories: 550},
	{Description: "granny smith apple", Weight: 5, Calories: 95},
	{Description: "trail mix pouch", Weight: 4, Calories: 600},
}

// Store provides access to the live menu used by the solvers.
type Store interface {
	Menu() (knapsack.Menu, error)
	Replace(items []knapsack.Item) error
}

// MemoryStore keeps the menu in-memory and guards access with a RWMutex.
type MemoryStore struct {
	mu   sync.RWMutex
	menu knapsack.Menu
}

// NewMemoryStore initialises a store with a copy of the default menu.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menu: cloneMenu(defaultMenu),
	}
}

// DefaultMenu returns a copy of the default seed menu.
func DefaultMenu() knapsack.Menu {
	return cloneMenu(defaultMenu)
}

// Menu returns a defensive copy of the current menu, so callers can solve
// against it while the live menu is concurrently replaced.
func (s *MemoryStore) Menu() (knapsack.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneMenu(s.menu), nil
}

// Replace validates the provided items and installs them as the new menu.
// Every item must satisfy the Item invariant; a single bad item rejects the
// whole replacement.
func (s *MemoryStore) Replace(items []knapsack.Item) error {
	if len(items) == 0 {
		return ErrEmptyCatalog
	}

	menu := make(knapsack.Menu, 0, len(items))
	for i, raw := range items {
		item, err := knapsack.NewItem(raw.Description, raw.Weight, raw.Calories)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		menu = append(menu, item)
	}

	s.mu.Lock()
	s.menu = menu
	s.mu.Unlock()

	return nil
}

func cloneMenu(src knapsack.Menu) knapsack.Menu {
	out := make(knapsack.Menu, len(src))
	copy(out, src)
	return out
}
