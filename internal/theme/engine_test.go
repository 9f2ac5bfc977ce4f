package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmc-dev/pmc/internal/palette"
)

// fakeSource is an in-memory Source for tests.
type fakeSource struct {
	hex     string
	tokens  map[string]StyleToken
	pal     map[string]palette.RGB
	saveErr error
	saved   []string
}

func (s *fakeSource) ThemeHex() string                   { return s.hex }
func (s *fakeSource) StyleTokens() map[string]StyleToken { return s.tokens }
func (s *fakeSource) Palette() map[string]palette.RGB    { return s.pal }

func (s *fakeSource) SetThemeHex(hex string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.hex = hex
	s.pal = palette.Generate(hex)
	s.saved = append(s.saved, hex)
	return nil
}

func newFakeSource(hex string) *fakeSource {
	return &fakeSource{
		hex:    hex,
		tokens: map[string]StyleToken{},
		pal:    palette.Generate(hex),
	}
}

func TestGetColorPrecedence(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.tokens["Error"] = StyleToken{Role: "Error", Fg: "#AA0000"}
	src.pal["Border"] = palette.RGB{R: 0x11, G: 0x22, B: 0x33}

	e := New(src)

	t.Run("style token wins", func(t *testing.T) {
		require.Equal(t, "#AA0000", e.GetColor("Error"))
	})

	t.Run("palette entry second", func(t *testing.T) {
		require.Equal(t, "#112233", e.GetColor("Border"))
	})

	t.Run("default table for unknown palette role", func(t *testing.T) {
		src.pal = map[string]palette.RGB{}
		fresh := New(src)
		require.Equal(t, defaultRoleHex["Muted"], fresh.GetColor("Muted"))
	})

	t.Run("seed hex for unknown role", func(t *testing.T) {
		require.Equal(t, "#33aaff", e.GetColor("NoSuchRole"))
	})
}

func TestGetColorMemoizes(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.pal["Border"] = palette.RGB{R: 1, G: 2, B: 3}

	e := New(src)
	first := e.GetColor("Border")

	// Mutating the palette in place must not change an already-resolved
	// role until Reload.
	src.pal["Border"] = palette.RGB{R: 200, G: 200, B: 200}
	require.Equal(t, first, e.GetColor("Border"))

	e.Reload()
	require.Equal(t, "#C8C8C8", e.GetColor("Border"))
}

func TestGetAnsiSequenceSeedPrimary(t *testing.T) {
	e := New(newFakeSource("#33aaff"))

	require.Equal(t, "\x1b[38;2;51;170;255m", e.GetAnsiSequence("Primary", false))
	require.Equal(t, "\x1b[48;2;51;170;255m", e.GetAnsiSequence("Primary", true))
}

func TestGetAnsiSequenceMalformedHex(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.tokens["Odd"] = StyleToken{Role: "Odd", Fg: "#12345"}
	src.tokens["Junk"] = StyleToken{Role: "Junk", Fg: "#GGHHII"}

	e := New(src)

	require.Empty(t, e.GetAnsiSequence("Odd", false))
	require.Empty(t, e.GetAnsiSequence("Junk", true))
}

func TestGetStyleSynthesizesFromColor(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.tokens["Header"] = StyleToken{Role: "Header", Fg: "#FFFFFF", Bg: "#0000AA", Bold: true}

	e := New(src)

	t.Run("registered token returned as-is", func(t *testing.T) {
		token := e.GetStyle("Header")
		require.Equal(t, "#0000AA", token.Bg)
		require.True(t, token.Bold)
	})

	t.Run("missing token synthesized", func(t *testing.T) {
		token := e.GetStyle("Primary")
		require.Equal(t, e.GetColor("Primary"), token.Fg)
		require.Empty(t, token.Bg)
		require.False(t, token.Bold)
	})
}

func TestGetThemeSnapshot(t *testing.T) {
	e := New(newFakeSource("#33aaff"))

	snapshot := e.GetTheme()

	require.Equal(t, "\x1b[0m", snapshot["Reset"])
	require.Equal(t, e.GetAnsiSequence("Primary", false), snapshot["Primary"])
	require.Equal(t, e.GetAnsiSequence("Primary", true), snapshot["PrimaryBg"])
	for _, key := range []string{"Header", "Title", "Text", "Muted", "Error", "Warning", "Success", "Info", "Border", "Bright"} {
		require.Contains(t, snapshot, key)
	}
}

func TestSetThemeValidation(t *testing.T) {
	e := New(newFakeSource("#33aaff"))

	require.ErrorIs(t, e.SetTheme(""), ErrInvalidThemeInput)
	require.ErrorIs(t, e.SetTheme("   "), ErrInvalidThemeInput)
}

func TestSetThemeNormalizesAndClearsCaches(t *testing.T) {
	src := newFakeSource("#33aaff")
	e := New(src)

	// Populate both caches.
	e.GetColor("Primary")
	e.GetAnsiSequence("Primary", false)
	require.NotEmpty(t, e.colorCache)
	require.NotEmpty(t, e.ansiCache)

	require.NoError(t, e.SetTheme("ff0000"))

	require.Equal(t, "#ff0000", e.GetCurrentThemeHex())
	require.Equal(t, []string{"#ff0000"}, src.saved)
	require.Empty(t, e.colorCache)
	require.Empty(t, e.ansiCache)

	require.Equal(t, "\x1b[38;2;255;0;0m", e.GetAnsiSequence("Primary", false))
}

func TestSetThemePersistenceFailure(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.saveErr = errors.New("disk full")
	e := New(src)

	err := e.SetTheme("#00ff00")
	require.Error(t, err)
	require.ErrorIs(t, err, src.saveErr)
	// Seed is unchanged when persistence fails.
	require.Equal(t, "#33aaff", e.GetCurrentThemeHex())
}

func TestSubscribersNotifiedBestEffort(t *testing.T) {
	e := New(newFakeSource("#33aaff"))

	var calls []string
	e.Subscribe(func() { calls = append(calls, "first") })
	e.Subscribe(func() { panic("broken subscriber") })
	e.Subscribe(func() { calls = append(calls, "third") })

	require.NoError(t, e.SetTheme("#123456"))
	require.Equal(t, []string{"first", "third"}, calls)

	e.Reload()
	require.Equal(t, []string{"first", "third", "first", "third"}, calls)
}

func TestNilSourceFallsBackToDefaults(t *testing.T) {
	e := New(nil)

	require.Equal(t, DefaultSeedHex, e.GetCurrentThemeHex())
	require.Equal(t, defaultRoleHex["Primary"], e.GetColor("Primary"))
	require.Equal(t, DefaultSeedHex, e.GetColor("UnknownRole"))
}

func TestGetAvailableRoles(t *testing.T) {
	src := newFakeSource("#33aaff")
	src.tokens["Custom"] = StyleToken{Role: "Custom", Fg: "#101010"}
	src.pal = map[string]palette.RGB{"Primary": {R: 1, G: 2, B: 3}}

	e := New(src)

	require.Equal(t, []string{"Custom", "Primary"}, e.GetAvailableRoles())
}

func TestHexRgbRoundTrip(t *testing.T) {
	cases := []palette.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 51, G: 170, B: 255},
		{R: 1, G: 2, B: 3},
		{R: 200, G: 100, B: 50},
	}

	for _, c := range cases {
		hex := RgbToHex(int(c.R), int(c.G), int(c.B))
		require.Len(t, hex, 7)
		require.Equal(t, hex, "#"+strings.ToUpper(hex[1:]))
		require.Equal(t, c, HexToRgb(hex))
	}
}

func TestHexToRgbMalformed(t *testing.T) {
	for _, input := range []string{"", "#", "#FFF", "#1234567", "zzzzzz", "#GGGGGG"} {
		require.Equal(t, palette.RGB{}, HexToRgb(input), "input %q", input)
	}
}
