// Package palette derives a full role palette from a single seed color.
package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSeedHex is the seed used when no theme is configured or the
// configured seed cannot be parsed.
const DefaultSeedHex = "#33AAFF"

// RGB is a color in 8-bit-per-channel RGB space.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Roles lists every role the generator produces, in a fixed order.
var Roles = []string{
	"Primary",
	"Secondary",
	"Header",
	"Title",
	"Text",
	"Body",
	"Label",
	"Muted",
	"Highlight",
	"Border",
	"Status",
	"Bright",
	"Error",
	"Warning",
	"Success",
	"Info",
}

// Generate derives a role palette from the seed hex. The seed drives the
// brand roles directly and the remaining roles by hue rotation and luminance
// scaling, so a single color yields a coherent scheme. An unparsable seed
// falls back to DefaultSeedHex; Generate never fails.
func Generate(seedHex string) map[string]RGB {
	seed, err := parse(seedHex)
	if err != nil {
		seed, _ = parse(DefaultSeedHex)
	}

	h, s, l := seed.Hsl()

	p := map[string]RGB{
		"Primary":   toRGB(seed),
		"Secondary": hsl(h+30, s*0.8, l),
		"Header":    hsl(h, s, clamp01(l*1.15)),
		"Title":     hsl(h, s, clamp01(l*1.25)),
		"Text":      hsl(h, s*0.10, 0.92),
		"Body":      hsl(h, s*0.10, 0.85),
		"Label":     hsl(h, s*0.35, 0.75),
		"Muted":     hsl(h, s*0.15, 0.55),
		"Highlight": hsl(h, s, clamp01(l*1.35)),
		"Border":    hsl(h, s*0.45, clamp01(l*0.55)),
		"Status":    hsl(h, s*0.70, clamp01(l*0.85)),
		"Bright":    hsl(h, s, clamp01(l*1.45)),
	}

	// State roles keep conventional hues; only saturation and luminance
	// follow the seed so they still read as part of the scheme.
	p["Error"] = hsl(0, maxf(s, 0.60), 0.60)
	p["Warning"] = hsl(40, maxf(s, 0.60), 0.60)
	p["Success"] = hsl(120, maxf(s, 0.45), 0.55)
	p["Info"] = hsl(200, maxf(s, 0.50), 0.60)

	return p
}

func parse(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return colorful.Color{}, fmt.Errorf("empty hex")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return colorful.Hex(hex)
}

func hsl(h, s, l float64) RGB {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return toRGB(colorful.Hsl(h, clamp01(s), clamp01(l)))
}

func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
