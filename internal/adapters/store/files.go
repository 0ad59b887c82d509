package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	entrySuffix    = ".entry"
	generationFile = "generation"
)

// filesBackend stores one file per entry, named by the SHA-256 of the key.
// Files are replaced atomically, so a reader in another process sees either
// the previous or the new entry, never a partial one.
type filesBackend struct {
	dir string
}

func openFiles(dir string) (*filesBackend, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "dir", dir)
	}
	return &filesBackend{dir: dir}, nil
}

func (b *filesBackend) get(key []byte) ([]byte, bool, error) {
	filename := b.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", filename)
	}

	n, size := binary.Uvarint(data)
	if size <= 0 || uint64(len(data)-size) < n {
		return nil, false, zerr.With(zerr.Wrap(domain.ErrCodecTruncated, domain.ErrStoreReadFailed.Error()), "file", filename)
	}
	stored := data[size : size+int(n)] //nolint:gosec // Bounded by len(data) above.
	if !bytes.Equal(stored, key) {
		// Another key with the same digest owns the file.
		return nil, false, nil
	}
	return data[size+len(stored):], true, nil
}

func (b *filesBackend) put(key, value []byte) error {
	var buf bytes.Buffer
	buf.Write(binary.AppendUvarint(nil, uint64(len(key))))
	buf.Write(key)
	buf.Write(value)

	filename := b.filename(key)
	if err := atomic.WriteFile(filename, &buf); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "file", filename)
	}
	return b.bump()
}

// version returns the generation token, which every writer replaces after a change.
func (b *filesBackend) version() (uint64, error) {
	path := filepath.Join(b.dir, generationFile)
	//nolint:gosec // Path is constructed from trusted directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", path)
	}
	if len(data) != 8 {
		// Unreadable token: report a change.
		return rand.Uint64(), nil
	}
	return binary.BigEndian.Uint64(data), nil
}

func (b *filesBackend) bump() error {
	path := filepath.Join(b.dir, generationFile)
	token := binary.BigEndian.AppendUint64(nil, rand.Uint64())
	if err := atomic.WriteFile(path, bytes.NewReader(token)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "file", path)
	}
	return nil
}

func (b *filesBackend) stats() (int, int64, error) {
	entries, err := b.entries()
	if err != nil {
		return 0, 0, err
	}
	var size int64
	count := 0
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			// Replaced or removed concurrently.
			continue
		}
		count++
		size += info.Size()
	}
	return count, size, nil
}

func (b *filesBackend) clear() error {
	entries, err := b.entries()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	for _, e := range entries {
		path := filepath.Join(b.dir, e.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "file", path)
		}
	}
	return b.bump()
}

func (b *filesBackend) location() string {
	return b.dir
}

func (b *filesBackend) close() error {
	return nil
}

func (b *filesBackend) entries() ([]fs.DirEntry, error) {
	all, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "dir", b.dir)
	}
	out := all[:0]
	for _, e := range all {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), entrySuffix) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (b *filesBackend) filename(key []byte) string {
	hash := sha256.Sum256(key)
	return filepath.Join(b.dir, hex.EncodeToString(hash[:])+entrySuffix)
}
