// Package config provides the viper-backed configuration store for pmc. It
// owns the persisted theme seed and regenerates the derived color palette
// and style tokens whenever the seed changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pmc-dev/pmc/internal/logging"
	"github.com/pmc-dev/pmc/internal/palette"
	"github.com/pmc-dev/pmc/internal/theme"
)

// Configuration keys.
const (
	KeyThemeHex = "display.theme.hex"
	KeyStyles   = "display.styles"
	KeyDataPath = "data.path"
)

const configFileName = "config.yaml"

// styleEntry is the on-disk shape of a per-role style override.
type styleEntry struct {
	Fg   string `mapstructure:"fg"`
	Bg   string `mapstructure:"bg"`
	Bold bool   `mapstructure:"bold"`
}

// Store reads and writes pmc configuration. It implements theme.Source: the
// palette and style tokens it serves are regenerated from the seed hex on
// load and on every seed change.
type Store struct {
	v      *viper.Viper
	dir    string
	logger zerolog.Logger

	pal    map[string]palette.RGB
	tokens map[string]theme.StyleToken
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "pmc"), nil
}

// Load reads configuration from dir. A missing config file is not an error;
// defaults apply and the file is created on first save.
func Load(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("config directory is required")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault(KeyThemeHex, palette.DefaultSeedHex)
	v.SetDefault(KeyDataPath, filepath.Join(dir, "pmc.db"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &Store{
		v:      v,
		dir:    dir,
		logger: logging.Component("config"),
	}
	s.regenerate()
	return s, nil
}

// ThemeHex returns the configured seed hex.
func (s *Store) ThemeHex() string {
	return s.v.GetString(KeyThemeHex)
}

// DataPath returns the SQLite database path.
func (s *Store) DataPath() string {
	return s.v.GetString(KeyDataPath)
}

// StyleTokens returns the per-role style overrides from configuration.
func (s *Store) StyleTokens() map[string]theme.StyleToken {
	return s.tokens
}

// Palette returns the role palette derived from the current seed.
func (s *Store) Palette() map[string]palette.RGB {
	return s.pal
}

// SetThemeHex persists a new seed hex and regenerates the palette and style
// tokens. The write failure is returned so callers can report that the
// persisted and in-memory seeds would otherwise diverge.
func (s *Store) SetThemeHex(hex string) error {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return errors.New("theme hex is required")
	}

	s.v.Set(KeyThemeHex, hex)
	if err := s.write(); err != nil {
		return fmt.Errorf("save theme %s: %w", hex, err)
	}

	s.regenerate()
	s.logger.Debug().Str("hex", hex).Msg("theme seed saved")
	return nil
}

func (s *Store) write() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return s.v.WriteConfigAs(filepath.Join(s.dir, configFileName))
}

// regenerate rebuilds the derived palette and style tokens from the current
// seed and the configured overrides.
func (s *Store) regenerate() {
	s.pal = palette.Generate(s.ThemeHex())

	s.tokens = make(map[string]theme.StyleToken)
	raw := map[string]styleEntry{}
	if err := s.v.UnmarshalKey(KeyStyles, &raw); err != nil {
		s.logger.Warn().Err(err).Msg("invalid style overrides, ignoring")
		return
	}
	for role, entry := range raw {
		// Viper lowercases map keys; fold them back onto the canonical
		// role names the engine resolves against.
		role = canonicalRole(role)
		s.tokens[role] = theme.StyleToken{
			Role: role,
			Fg:   entry.Fg,
			Bg:   entry.Bg,
			Bold: entry.Bold,
		}
	}
}

var canonicalRoles = func() map[string]string {
	m := make(map[string]string, len(palette.Roles))
	for _, role := range palette.Roles {
		m[strings.ToLower(role)] = role
	}
	return m
}()

func canonicalRole(role string) string {
	if canon, ok := canonicalRoles[strings.ToLower(role)]; ok {
		return canon
	}
	return role
}
