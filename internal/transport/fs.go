// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package transport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tomtom215/curriculum/internal/models"
)

// FSFetcher serves content from a file system, typically os.DirFS of a
// checked-out content repository. Directories are rendered as listings in the
// same shape a static host would serve.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher wraps fsys.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// NewDirFetcher serves the directory at root.
func NewDirFetcher(root string) (*FSFetcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}
	return NewFSFetcher(os.DirFS(root)), nil
}

// Fetch reads path. Directories return a JSON listing.
func (f *FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.Trim(path, "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("fetch %s: invalid path", path)
	}

	info, err := fs.Stat(f.fsys, name)
	if err != nil {
		return nil, wrapFSError(path, err)
	}
	if info.IsDir() {
		return f.listing(path, name)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, wrapFSError(path, err)
	}
	return data, nil
}

func (f *FSFetcher) listing(path, name string) ([]byte, error) {
	entries, err := fs.ReadDir(f.fsys, name)
	if err != nil {
		return nil, wrapFSError(path, err)
	}

	out := make([]models.DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.IsDir() {
			out = append(out, models.DirectoryEntry{Name: e.Name() + "/", Type: models.EntryDirectory})
			continue
		}
		out = append(out, models.DirectoryEntry{Name: e.Name(), Type: models.EntryFile})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: encode listing: %w", path, err)
	}
	return data, nil
}

func wrapFSError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("fetch %s: %w", path, ErrNotFound)
	}
	return fmt.Errorf("fetch %s: %w", path, err)
}
