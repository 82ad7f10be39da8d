package model

import (
	"os"
	"path/filepath"
)

// defaultCacheDir places the report cache under the user cache dir,
// falling back to a relative directory when the home is unknown.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".leadflow-cache"
	}
	return filepath.Join(base, "leadflow")
}
