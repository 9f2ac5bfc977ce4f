package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pmc-dev/pmc/internal/resolver"
	"github.com/pmc-dev/pmc/internal/screens"
)

// ScreenPusher is the external screen stack manifest actions push onto.
type ScreenPusher interface {
	Push(s screens.Screen)
}

// ManifestOptions carry the collaborators manifest registration wires
// screens to.
type ManifestOptions struct {
	Catalog *screens.Catalog
	Stack   ScreenPusher
}

// EntryError records a failure for a single manifest entry.
type EntryError struct {
	Screen string
	Err    error
}

// LoadResult reports the outcome of a manifest load: how many entries were
// registered and which ones failed. A partially populated menu is a valid
// outcome; callers decide whether to surface the errors.
type LoadResult struct {
	Registered int
	Errors     []EntryError
}

func (r *LoadResult) fail(screen string, err error) {
	r.Errors = append(r.Errors, EntryError{Screen: screen, Err: err})
}

// manifestEntry is the on-disk shape of one screen declaration.
type manifestEntry struct {
	Menu   string `yaml:"menu"`
	Label  string `yaml:"label"`
	Hotkey string `yaml:"hotkey"`
	Order  *int   `yaml:"order"`
	Screen string `yaml:"screen"`
	View   string `yaml:"view"`
}

// screenDescriptor is an immutable per-entry record built before any
// registration happens, so factories capture entry parameters by value and
// can never see a later entry's fields.
type screenDescriptor struct {
	name     string
	menuName string
	label    string
	hotkey   rune
	order    int
	unit     string
	viewMode string
}

// LoadFromManifest reads the manifest at path and, for each declared screen,
// registers a lazy non-singleton factory in the resolver plus a menu item
// whose action resolves the screen and pushes it onto the stack. A missing
// manifest is a soft failure: it is logged and an empty result returned.
// Entry failures do not abort the load; the menu keeps whatever succeeded.
func (r *Registry) LoadFromManifest(path string, res *resolver.Container, opts ManifestOptions) *LoadResult {
	result := &LoadResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn().Str("path", path).Msg("manifest not found, menus unchanged")
			return result
		}
		r.logger.Error().Err(err).Str("path", path).Msg("read manifest")
		result.fail("", fmt.Errorf("read manifest %s: %w", path, err))
		return result
	}

	descriptors, entryErrs, err := parseManifest(data)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("parse manifest")
		result.fail("", fmt.Errorf("parse manifest %s: %w", path, err))
		return result
	}
	for _, entryErr := range entryErrs {
		r.logger.Warn().Err(entryErr.Err).Str("screen", entryErr.Screen).Msg("skipping manifest entry")
		result.Errors = append(result.Errors, entryErr)
	}

	for _, d := range descriptors {
		if err := r.registerDescriptor(d, res, opts); err != nil {
			r.logger.Warn().Err(err).Str("screen", d.name).Msg("manifest entry failed")
			result.fail(d.name, err)
			continue
		}
		result.Registered++
	}

	r.logger.Debug().
		Int("registered", result.Registered).
		Int("errors", len(result.Errors)).
		Str("path", path).
		Msg("manifest loaded")
	return result
}

// registerDescriptor wires a single descriptor: a lazy screen factory in the
// resolver (skipped when the name is already registered) and the menu item
// that resolves it.
func (r *Registry) registerDescriptor(d screenDescriptor, res *resolver.Container, opts ManifestOptions) error {
	if !res.IsRegistered(d.name) {
		// d is a value copy per descriptor; the closure carries its own
		// unit and view mode.
		res.Register(d.name, func(*resolver.Container) (any, error) {
			return opts.Catalog.Build(d.unit, d.viewMode)
		}, false)
	}

	action := func() error {
		instance, err := res.Resolve(d.name)
		if err != nil {
			return err
		}
		screen, ok := instance.(screens.Screen)
		if !ok {
			return fmt.Errorf("screen %q resolved to %T", d.name, instance)
		}
		opts.Stack.Push(screen)
		return nil
	}

	return r.AddMenuItem(d.menuName, d.label, d.hotkey, action, d.order)
}

// parseManifest decodes the manifest preserving document order. Entries that
// fail to decode are reported individually; a malformed document fails as a
// whole.
func parseManifest(data []byte) ([]screenDescriptor, []EntryError, error) {
	var doc struct {
		Screens yaml.Node `yaml:"screens"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Screens.Kind == 0 {
		return nil, nil, fmt.Errorf("manifest has no screens section")
	}
	if doc.Screens.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("screens section must be a mapping")
	}

	var (
		descriptors []screenDescriptor
		entryErrs   []EntryError
	)
	content := doc.Screens.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value

		var entry manifestEntry
		if err := content[i+1].Decode(&entry); err != nil {
			entryErrs = append(entryErrs, EntryError{Screen: name, Err: err})
			continue
		}
		if entry.Screen == "" {
			entryErrs = append(entryErrs, EntryError{Screen: name, Err: fmt.Errorf("entry %q missing screen unit", name)})
			continue
		}

		order := DefaultOrder
		if entry.Order != nil {
			order = *entry.Order
		}
		var hotkey rune
		for _, r := range entry.Hotkey {
			hotkey = r
			break
		}

		descriptors = append(descriptors, screenDescriptor{
			name:     name,
			menuName: entry.Menu,
			label:    entry.Label,
			hotkey:   hotkey,
			order:    order,
			unit:     entry.Screen,
			viewMode: entry.View,
		})
	}
	return descriptors, entryErrs, nil
}
