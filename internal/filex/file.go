// Package filex contains filesystem helpers for the client's local data
// directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir creates dirName under the current working directory if it
// does not exist yet and returns its absolute path. The local database and
// other client-owned files live there.
func EnsureDataDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
