// Package fsutil provides file system helpers for package discovery.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches root for files whose name ends
// with the given extension. Matching is case-insensitive, since return
// packages frequently arrive from Windows machines with uppercased
// extensions. Results come back in WalkDir's deterministic lexical order.
func FindFilesByExtension(root, extension string) ([]string, error) {
	if extension == "" {
		return nil, errors.New("extension must not be empty")
	}
	ext := strings.ToLower(extension)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
