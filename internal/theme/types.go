package theme

import "github.com/pmc-dev/pmc/internal/palette"

// StyleToken is an externally supplied style for a role. Empty Fg/Bg mean
// the channel is unset.
type StyleToken struct {
	Role string `json:"role"`
	Fg   string `json:"fg,omitempty"`
	Bg   string `json:"bg,omitempty"`
	Bold bool   `json:"bold,omitempty"`
}

// Source is the external state the engine initializes from. The
// implementation regenerates its palette and style tokens whenever the seed
// hex changes.
type Source interface {
	// ThemeHex returns the configured seed hex.
	ThemeHex() string

	// StyleTokens returns per-role style overrides.
	StyleTokens() map[string]StyleToken

	// Palette returns the derived role palette.
	Palette() map[string]palette.RGB

	// SetThemeHex persists a new seed and regenerates palette and tokens.
	SetThemeHex(hex string) error
}
