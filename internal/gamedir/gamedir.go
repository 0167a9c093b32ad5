// Package gamedir locates the game directory that holds pak archives and
// prepares output directories for extraction.
package gamedir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBaseDir is used when neither a flag nor PAKFB_BASEDIR is set.
const DefaultBaseDir = "id1"

// ErrNoArchives is returned by Validate when the directory has no pak0.
var ErrNoArchives = errors.New("no pak0.pak in game directory")

// ResolveBaseDir returns the game directory to use
func ResolveBaseDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	// Check environment variable next
	if dir := os.Getenv("PAKFB_BASEDIR"); dir != "" {
		return dir
	}

	return filepath.Join(".", DefaultBaseDir)
}

// Validate checks that dir exists and holds pak0.pak or PAK0.PAK.
func Validate(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("game directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("game directory %s: not a directory", dir)
	}

	for _, name := range []string{"pak0.pak", "PAK0.PAK"} {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", dir, ErrNoArchives)
}

// CreateOutputDir creates an extraction root and the parent directory of
// every entry name beneath it.
func CreateOutputDir(root string, entries []string, mode os.FileMode) error {
	if mode == 0 {
		mode = 0o755
	}

	if err := os.MkdirAll(root, mode); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range entries {
		target, err := EntryPath(root, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), mode); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
	}

	return nil
}

// EntryPath maps an archive entry name under root. Names that would escape
// root are rejected.
func EntryPath(root, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." ||
		len(clean) > 2 && clean[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf("entry name %q escapes output directory", name)
	}
	return filepath.Join(root, clean), nil
}
