package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// DirLister lists versions from a directory laid out as
// <group with dots as separators>/<name>/<version>/.
type DirLister struct {
	root string
}

var _ ports.VersionLister = (*DirLister)(nil)

// NewDirLister creates a lister over the repository at root.
func NewDirLister(root string) *DirLister {
	return &DirLister{root: filepath.Clean(root)}
}

// ListVersions returns the version directories of module.
func (l *DirLister) ListVersions(ctx context.Context, module domain.ModuleID) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := l.modulePath(module)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		err = zerr.Wrap(err, domain.ErrRepositoryReadFailed.Error())
		return nil, zerr.With(err, "module", module.String())
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		versions = append(versions, entry.Name())
	}
	return sortVersions(versions), nil
}

func (l *DirLister) modulePath(module domain.ModuleID) string {
	parts := append(strings.Split(module.Group, "."), module.Name)
	return filepath.Join(append([]string{l.root}, parts...)...)
}
