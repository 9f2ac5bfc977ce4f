package theme

// DefaultSeedHex is the built-in seed used when no external theme state is
// available.
const DefaultSeedHex = "#33AAFF"

// lastResortHex is returned when a role has no token, no palette entry, no
// default, and even the seed is unavailable.
const lastResortHex = "#CCCCCC"

// defaultRoleHex is the fixed per-role fallback table. Roles missing here
// resolve to the seed hex.
var defaultRoleHex = map[string]string{
	"Primary":   "#33AAFF",
	"Secondary": "#3388CC",
	"Header":    "#55BBFF",
	"Title":     "#66CCFF",
	"Text":      "#E6E6E6",
	"Body":      "#CCCCCC",
	"Label":     "#AACCEE",
	"Muted":     "#808080",
	"Highlight": "#77DDFF",
	"Border":    "#444444",
	"Status":    "#33AAFF",
	"Bright":    "#FFFFFF",
	"Error":     "#FF5555",
	"Warning":   "#F1C232",
	"Success":   "#55CC77",
	"Info":      "#5BC0DE",
}
