package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Extensions lists the file extensions treated as SDL documents.
var Extensions = []string{".graphql", ".graphqls"}

// IsSchemaFile reports whether path has one of Extensions.
func IsSchemaFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FileSystemDiscovery implements Discovery for SDL files on disk.
type FileSystemDiscovery struct {
	files []string
}

// NewFileSystemDiscovery collects SDL files from paths. Directories are
// walked recursively; files are taken as given regardless of extension.
// Documents are listed sorted by path with duplicates removed.
func NewFileSystemDiscovery(paths ...string) (*FileSystemDiscovery, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !IsSchemaFile(d.Name()) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %q: %w", root, err)
		}
	}
	sort.Strings(files)
	return &FileSystemDiscovery{files: files}, nil
}

// List implements Discovery.
func (d *FileSystemDiscovery) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.files...), nil
}

// Read implements Discovery.
func (d *FileSystemDiscovery) Read(ctx context.Context, name string) (string, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema document %q: %w", name, err)
	}
	return string(content), nil
}
