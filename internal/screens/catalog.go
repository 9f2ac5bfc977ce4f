// Package screens contains the loadable UI units of pmc and the catalog
// that constructs them on demand.
package screens

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/theme"
)

// Screen is a UI unit that can be pushed onto the shell's screen stack.
type Screen interface {
	tea.Model
	Title() string
}

// Deps are the collaborators screens are built with.
type Deps struct {
	Theme  *theme.Engine
	Tasks  *db.TaskRepository
	Time   *db.TimeEntryRepository
	Logger zerolog.Logger
}

// Builder constructs a screen. The view mode discriminator is empty unless
// the manifest declares a variant.
type Builder func(deps Deps, viewMode string) (Screen, error)

// Catalog maps unit names to screen builders. Loading a unit is idempotent;
// building happens on every Build call so screens are fresh per invocation.
type Catalog struct {
	deps   Deps
	units  map[string]Builder
	loaded map[string]bool
}

// NewCatalog creates a catalog with the built-in units registered.
func NewCatalog(deps Deps) *Catalog {
	c := &Catalog{
		deps:   deps,
		units:  make(map[string]Builder),
		loaded: make(map[string]bool),
	}

	c.register("tasklist", newTaskList)
	c.register("projects", newProjects)
	c.register("timesheet", newTimesheet)
	c.register("theme-picker", newThemePicker)
	c.register("help", newHelp)

	return c
}

func (c *Catalog) register(unit string, builder Builder) {
	c.units[unit] = builder
}

// Load resolves a unit reference. Loading the same unit twice is a no-op.
func (c *Catalog) Load(unit string) error {
	if _, ok := c.units[unit]; !ok {
		return fmt.Errorf("unknown screen unit %q", unit)
	}
	c.loaded[unit] = true
	return nil
}

// Build loads the unit and constructs a screen instance.
func (c *Catalog) Build(unit, viewMode string) (Screen, error) {
	if err := c.Load(unit); err != nil {
		return nil, err
	}
	screen, err := c.units[unit](c.deps, viewMode)
	if err != nil {
		return nil, fmt.Errorf("build screen %q: %w", unit, err)
	}
	return screen, nil
}

// Units returns the registered unit names, sorted.
func (c *Catalog) Units() []string {
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
