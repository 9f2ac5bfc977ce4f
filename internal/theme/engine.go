// Package theme resolves color roles to hex values and terminal escape
// sequences, deriving everything from a single seed color.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pmc-dev/pmc/internal/logging"
	"github.com/pmc-dev/pmc/internal/palette"
)

// Engine errors. Read paths never return errors; only SetTheme can fail.
var (
	ErrInvalidThemeInput = errors.New("theme seed hex is required")
)

// Reset is the terminal reset sequence.
const Reset = "\x1b[0m"

// themeKeys are the fixed semantic keys GetTheme exposes, besides Reset.
var themeKeys = []string{
	"Primary", "Header", "Title", "Text", "Body", "Muted", "Label",
	"Highlight", "Error", "Warning", "Success", "Info", "Border",
	"Status", "Bright",
}

// Engine is the single source of truth for colors. It memoizes role
// resolution and escape-sequence derivation; both caches are cleared by
// Reload and SetTheme. The engine is not safe for concurrent use; it is
// driven from the UI's synchronous render path.
type Engine struct {
	source Source
	logger zerolog.Logger

	seedHex string
	tokens  map[string]StyleToken
	pal     map[string]palette.RGB

	colorCache map[string]string
	ansiCache  map[string]string

	subscribers []func()
}

// New builds an engine over the given source. A nil source, or a source with
// no usable state, falls back to the built-in default theme; construction
// never fails.
func New(source Source) *Engine {
	e := &Engine{
		source: source,
		logger: logging.Component("theme"),
	}
	e.load()
	return e
}

// load pulls current state from the source, falling back to defaults.
func (e *Engine) load() {
	e.colorCache = make(map[string]string)
	e.ansiCache = make(map[string]string)

	e.seedHex = DefaultSeedHex
	e.tokens = map[string]StyleToken{}
	e.pal = map[string]palette.RGB{}

	if e.source == nil {
		return
	}

	if hex := strings.TrimSpace(e.source.ThemeHex()); hex != "" {
		e.seedHex = normalizeHex(hex)
	}
	if tokens := e.source.StyleTokens(); tokens != nil {
		e.tokens = tokens
	}
	if pal := e.source.Palette(); pal != nil {
		e.pal = pal
	}
}

// GetColor resolves a role to a hex string. Precedence: cache, style token
// foreground, palette entry, fixed default table, seed hex. The result is
// memoized; GetColor never fails.
func (e *Engine) GetColor(role string) string {
	if hex, ok := e.colorCache[role]; ok {
		return hex
	}

	hex := e.resolveColor(role)
	e.colorCache[role] = hex
	return hex
}

func (e *Engine) resolveColor(role string) string {
	if token, ok := e.tokens[role]; ok && token.Fg != "" {
		return token.Fg
	}
	if entry, ok := e.pal[role]; ok {
		return entry.Hex()
	}
	if hex, ok := defaultRoleHex[role]; ok {
		return hex
	}
	if e.seedHex != "" {
		return e.seedHex
	}
	return lastResortHex
}

// GetAnsiSequence returns the 24-bit color escape sequence for a role, as a
// foreground or background code. A role that resolves to no usable hex
// yields an empty string.
func (e *Engine) GetAnsiSequence(role string, background bool) string {
	key := role + "/fg"
	if background {
		key = role + "/bg"
	}
	if seq, ok := e.ansiCache[key]; ok {
		return seq
	}

	seq := ansiFromHex(e.GetColor(role), background)
	e.ansiCache[key] = seq
	return seq
}

func ansiFromHex(hex string, background bool) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 || !isHexDigits(hex) {
		return ""
	}
	rgb := HexToRgb(hex)
	code := 38
	if background {
		code = 48
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, rgb.R, rgb.G, rgb.B)
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// GetStyle returns the style token for a role, synthesizing a
// foreground-only token from GetColor when none is registered.
func (e *Engine) GetStyle(role string) StyleToken {
	if token, ok := e.tokens[role]; ok {
		return token
	}
	return StyleToken{Role: role, Fg: e.GetColor(role)}
}

// Style returns a lipgloss style for a role, built from GetStyle.
func (e *Engine) Style(role string) lipgloss.Style {
	token := e.GetStyle(role)

	style := lipgloss.NewStyle()
	if token.Fg != "" {
		style = style.Foreground(lipgloss.Color(token.Fg))
	}
	if token.Bg != "" {
		style = style.Background(lipgloss.Color(token.Bg))
	}
	if token.Bold {
		style = style.Bold(true)
	}
	return style
}

// GetTheme returns a snapshot of escape sequences for the semantic keys most
// consumers need, plus PrimaryBg and the literal reset sequence. Each value
// goes through GetAnsiSequence and so shares its cache.
func (e *Engine) GetTheme() map[string]string {
	snapshot := make(map[string]string, len(themeKeys)+2)
	for _, key := range themeKeys {
		snapshot[key] = e.GetAnsiSequence(key, false)
	}
	snapshot["PrimaryBg"] = e.GetAnsiSequence("Primary", true)
	snapshot["Reset"] = Reset
	return snapshot
}

// GetCurrentThemeHex returns the active seed hex.
func (e *Engine) GetCurrentThemeHex() string {
	return e.seedHex
}

// GetAvailableRoles returns the union of style token and palette role names,
// sorted.
func (e *Engine) GetAvailableRoles() []string {
	seen := make(map[string]struct{}, len(e.tokens)+len(e.pal))
	for role := range e.tokens {
		seen[role] = struct{}{}
	}
	for role := range e.pal {
		seen[role] = struct{}{}
	}

	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Reload clears both caches and re-reads state from the source. Call after
// the backing configuration changed out from under the engine.
func (e *Engine) Reload() {
	e.load()
	e.notify()
}

// SetTheme persists a new seed hex, regenerates derived state and reloads.
// The hex is normalized with a "#" prefix if missing. Subscribed consumers
// are notified best-effort after the reload.
func (e *Engine) SetTheme(hex string) error {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return ErrInvalidThemeInput
	}
	hex = normalizeHex(hex)

	if e.source != nil {
		if err := e.source.SetThemeHex(hex); err != nil {
			return fmt.Errorf("persist theme %s: %w", hex, err)
		}
	}

	e.load()
	e.seedHex = hex
	e.notify()

	e.logger.Info().Str("hex", hex).Msg("theme changed")
	return nil
}

// Subscribe registers an invalidation callback invoked after Reload or
// SetTheme. A panicking callback is isolated so one broken subscriber cannot
// block the others.
func (e *Engine) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	e.subscribers = append(e.subscribers, fn)
}

func (e *Engine) notify() {
	for _, fn := range e.subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Warn().Interface("panic", r).Msg("theme subscriber failed")
				}
			}()
			fn()
		}()
	}
}

func normalizeHex(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return "#" + hex
	}
	return hex
}
