package cli

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed screens.yaml
var defaultManifest []byte

// ensureManifest returns the path of the screen manifest inside dir, writing
// the built-in default on first run so users have a file to edit.
func ensureManifest(dir string) (string, error) {
	path := filepath.Join(dir, "screens.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, defaultManifest, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
