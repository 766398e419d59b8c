package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the base directory for user configuration files,
// following the XDG Base Directory Specification.
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the addonlint configuration directory under ConfigHome.
func AppConfigDir(appName string) string {
	return filepath.Join(ConfigHome(), appName)
}
