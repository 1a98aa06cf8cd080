// Package cas stores records of compiled bundles, one JSON file per bundle, under a
// content addressed name.
package cas

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
)

const recordExt = ".json"

// Store implements ports.BundleStore using a file-per-bundle strategy.
type Store struct {
	dir string
	mu  sync.Mutex
}

var _ ports.BundleStore = (*Store)(nil)

// NewStore creates a Store backed by the directory at dir. The directory is created on
// the first Put.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = domain.DefaultStorePath()
	}
	return &Store{dir: dir}
}

// Dir returns the directory holding the records.
func (s *Store) Dir() string {
	return s.dir
}

// Get retrieves the record of a bundle. It returns nil, nil if none exists.
func (s *Store) Get(staticPath, name string) (*domain.CompiledBundle, error) {
	return s.read(s.filename(staticPath, name))
}

// Put stores the record of a bundle.
func (s *Store) Put(bundle domain.CompiledBundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreMarshalFailed, err), "bundle", bundle.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreCreateFailed, err), "dir", s.dir)
	}

	filename := s.filename(bundle.StaticPath, bundle.Name)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from the store directory and a hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", tmp)
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", filename)
	}
	return nil
}

// List returns every record ordered by static path and name. A missing store is empty.
func (s *Store) List() ([]domain.CompiledBundle, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "dir", s.dir)
	}

	var bundles []domain.CompiledBundle
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		bundle, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if bundle != nil {
			bundles = append(bundles, *bundle)
		}
	}

	slices.SortFunc(bundles, func(a, b domain.CompiledBundle) int {
		return cmp.Or(cmp.Compare(a.StaticPath, b.StaticPath), cmp.Compare(a.Name, b.Name))
	})
	return bundles, nil
}

// Delete removes the record of a bundle.
func (s *Store) Delete(staticPath, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename := s.filename(staticPath, name)
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", filename)
	}
	return nil
}

func (s *Store) read(filename string) (*domain.CompiledBundle, error) {
	//nolint:gosec // Path is constructed from the store directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", filename)
	}

	var bundle domain.CompiledBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnmarshalFailed, err), "path", filename)
	}
	return &bundle, nil
}

func (s *Store) filename(staticPath, name string) string {
	hash := sha256.Sum256([]byte(filepath.ToSlash(staticPath) + "\x00" + name))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+recordExt)
}
