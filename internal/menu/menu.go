// Package menu owns the shell's menu buckets and the manifest-driven screen
// registration that fills them.
package menu

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/pmc-dev/pmc/internal/logging"
)

// Registry errors.
var (
	ErrInvalidMenuName = errors.New("invalid menu name")
)

// CanonicalMenus are the six fixed menu buckets, in display order.
var CanonicalMenus = []string{"Tasks", "Projects", "Time", "Tools", "Options", "Help"}

// DefaultOrder is the sort order applied when a registration does not
// specify one.
const DefaultOrder = 100

// Item is a single menu entry. A separator has an empty label, no hotkey
// and a nil action. Items are immutable after registration.
type Item struct {
	Label  string
	Hotkey rune
	Action func() error
	Order  int
}

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool {
	return i.Label == "" && i.Action == nil
}

// Registry holds the canonical menu buckets. It is driven from the UI's
// synchronous input path and performs no locking of its own.
type Registry struct {
	buckets map[string][]Item
	logger  zerolog.Logger
}

// NewRegistry creates a registry with the six canonical buckets, all empty.
func NewRegistry() *Registry {
	r := &Registry{
		buckets: make(map[string][]Item, len(CanonicalMenus)),
		logger:  logging.Component("menu"),
	}
	for _, name := range CanonicalMenus {
		r.buckets[name] = nil
	}
	return r
}

// AddMenuItem appends an item to a canonical bucket. Duplicate labels and
// hotkeys are legal; ordering is resolved at query time.
func (r *Registry) AddMenuItem(menuName, label string, hotkey rune, action func() error, order int) error {
	if _, ok := r.buckets[menuName]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMenuName, menuName)
	}
	r.buckets[menuName] = append(r.buckets[menuName], Item{
		Label:  label,
		Hotkey: hotkey,
		Action: action,
		Order:  order,
	})
	return nil
}

// AddSeparator appends a separator item to a bucket.
func (r *Registry) AddSeparator(menuName string, order int) error {
	return r.AddMenuItem(menuName, "", 0, nil, order)
}

// GetMenuItems returns a bucket's items sorted by (order, label) ascending.
// The sort is stable, so exact ties keep registration order. An unknown menu
// name yields an empty slice rather than an error.
func (r *Registry) GetMenuItems(menuName string) []Item {
	bucket, ok := r.buckets[menuName]
	if !ok || len(bucket) == 0 {
		return []Item{}
	}

	items := make([]Item, len(bucket))
	copy(items, bucket)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Label < items[j].Label
	})
	return items
}

// GetAllMenus returns every non-empty bucket with its sorted items.
func (r *Registry) GetAllMenus() map[string][]Item {
	menus := make(map[string][]Item)
	for name, bucket := range r.buckets {
		if len(bucket) == 0 {
			continue
		}
		menus[name] = r.GetMenuItems(name)
	}
	return menus
}

// Clear empties every bucket. Intended for test isolation.
func (r *Registry) Clear() {
	for name := range r.buckets {
		r.buckets[name] = nil
	}
}
