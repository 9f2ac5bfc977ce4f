package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmc-dev/pmc/internal/palette"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, palette.DefaultSeedHex, s.ThemeHex())
	require.Equal(t, filepath.Join(dir, "pmc.db"), s.DataPath())
	require.NotEmpty(t, s.Palette())
	require.Empty(t, s.StyleTokens())
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`display:
  theme:
    hex: "#FF8800"
  styles:
    error:
      fg: "#AA0000"
      bold: true
data:
  path: /tmp/other.db
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	s, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "#FF8800", s.ThemeHex())
	require.Equal(t, "/tmp/other.db", s.DataPath())

	// Palette is regenerated from the configured seed.
	require.Equal(t, palette.RGB{R: 0xFF, G: 0x88, B: 0x00}, s.Palette()["Primary"])

	// Style override keys fold back to canonical role names.
	token, ok := s.StyleTokens()["Error"]
	require.True(t, ok)
	require.Equal(t, "#AA0000", token.Fg)
	require.True(t, token.Bold)
}

func TestSetThemeHexPersistsAndRegenerates(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, s.SetThemeHex("#112233"))
	require.Equal(t, palette.RGB{R: 0x11, G: 0x22, B: 0x33}, s.Palette()["Primary"])

	// A fresh load sees the persisted seed.
	reloaded, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "#112233", reloaded.ThemeHex())
}

func TestSetThemeHexRejectsEmpty(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Error(t, s.SetThemeHex("  "))
}

func TestLoadRequiresDir(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}
