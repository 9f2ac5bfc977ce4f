package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmc-dev/pmc/internal/palette"
)

// HexToRgb parses "#RRGGBB" (the "#" is optional) into an RGB triple. Any
// input that is not exactly six hex digits after stripping the prefix yields
// black rather than an error, so render paths stay total.
func HexToRgb(hex string) palette.RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return palette.RGB{}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return palette.RGB{}
	}
	return palette.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// RgbToHex formats a triple as "#RRGGBB" with uppercase digits. Channels
// outside 0-255 are clamped.
func RgbToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
