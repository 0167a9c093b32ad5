// Package permissions parses file modes given on the command line for
// extracted entries.
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default permission constants for extracted files
const (
	DefaultFilePerms = 0o644
	DefaultDirPerms  = 0o755
)

// ParseOctalString parses an octal permission string.
// Handles formats like "644", "0644", "0o644"; empty means DefaultFilePerms.
func ParseOctalString(s string) (os.FileMode, error) {
	if s == "" {
		return DefaultFilePerms, nil
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if trimmed == "" {
		return 0, nil
	}

	val, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: only permission bits are allowed", s)
	}

	return os.FileMode(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm os.FileMode) string {
	return fmt.Sprintf("0%o", perm.Perm())
}

// DirMode derives a directory mode from a file mode by granting execute
// wherever read is granted.
func DirMode(file os.FileMode) os.FileMode {
	perm := file.Perm()
	return perm | (perm&0o444)>>2
}
