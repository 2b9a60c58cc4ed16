package util

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(name string) string {
	if !strings.HasPrefix(name, "~") {
		return name
	}

	u, err := user.Current()
	if err != nil {
		Logger.Debug().Err(err).Msg("Cannot get home dir")
		return name
	}

	return filepath.Join(u.HomeDir, strings.TrimPrefix(name, "~"))
}

func FileExists(name string) bool {
	if name == "" {
		return false
	}

	info, err := os.Stat(ExpandHome(name))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// FindFile looks for any of the given names in the current directory and
// then each parent directory, returning the first match.
func FindFile(names []string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if FileExists(candidate) {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
