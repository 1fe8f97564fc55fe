// Package scan expands user-supplied paths into the flat list of audio files
// a batch will analyze. Files pass through untouched; directories are walked
// recursively and filtered by extension.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Gather resolves paths into audio file paths. Extensions are matched
// case-insensitively against accept (leading dots expected, e.g. ".wav").
// A path that does not exist fails the whole gather: silently skipping a
// typo would shrink the batch without anyone noticing.
func Gather(paths []string, accept []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		collected, err := walkDir(path, accept)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}
	return files, nil
}

func walkDir(root string, accept []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if matchesExtension(path, accept) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func matchesExtension(path string, accept []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, candidate := range accept {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
