// Package files holds the small file helpers used by launch tooling: reading
// trimmed data files, writing JSON output and locating credential files.
package files

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ReadDataFile returns the content of path with surrounding whitespace
// trimmed.
func ReadDataFile(path string) (string, error) {
	// #nosec G304 -- callers pass the file they want read
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s", path)
	}
	return strings.TrimSpace(string(content)), nil
}

// WriteLocalJSONFile writes v as JSON indented with four spaces to dir/name.
// An existing file is overwritten.
func WriteLocalJSONFile(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "cannot encode %s", name)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- output is meant to be shared
		return errors.Wrapf(err, "cannot write %s", path)
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("Wrote JSON file")
	return nil
}

// CredsFilePath locates a credentials file. name is returned unchanged if it
// exists; otherwise it is looked up in the current directory, its parent and
// $HOME/.kube, in that order.
func CredsFilePath(name string) (string, bool) {
	if exists(name) {
		return name, true
	}

	for _, dir := range credsSearchDirs() {
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			log.Debug().Str("file", candidate).Msg("Found credentials file")
			return candidate, true
		}
	}
	return "", false
}

func credsSearchDirs() []string {
	dirs := []string{".", ".."}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".kube"))
	}
	return dirs
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
