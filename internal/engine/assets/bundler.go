package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Options configure a Bundler for one build.
type Options struct {
	// Compile selects compiled mode. When false, includers emit one tag per source.
	Compile bool
	// CDNBase is the URL prefix used for absolute asset URLs.
	CDNBase string
}

// Bundler owns the state shared by every includer of a build: the bundle cache, the
// compressor and the per-bundle compile lock.
type Bundler struct {
	opts       Options
	cache      ports.BundleCache
	compressor ports.Compressor
	store      ports.BundleStore
	logger     ports.Logger
	clock      clockwork.Clock
	group      singleflight.Group
}

// NewBundler creates a Bundler with an empty cache.
// store may be nil, in which case compiled bundles are not recorded.
func NewBundler(compressor ports.Compressor, store ports.BundleStore, log ports.Logger, opts Options) *Bundler {
	return &Bundler{
		opts:       opts,
		cache:      NewCache(),
		compressor: compressor,
		store:      store,
		logger:     log,
		clock:      clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used for bundle timestamps.
func (b *Bundler) WithClock(c clockwork.Clock) *Bundler {
	b.clock = c
	return b
}

// WithCache replaces the bundle cache.
func (b *Bundler) WithCache(c ports.BundleCache) *Bundler {
	b.cache = c
	return b
}

// Compiling reports whether includers should compile bundles.
func (b *Bundler) Compiling() bool {
	return b.opts.Compile
}

// CDNBase returns the URL prefix for absolute asset URLs.
func (b *Bundler) CDNBase() string {
	return b.opts.CDNBase
}

// Reset drops every cached bundle so the next render recompiles.
func (b *Bundler) Reset() {
	b.cache.Reset()
}

// Compile returns the www-relative output path of the bundle name for a post,
// compiling sources into it unless this build already did.
// Concurrent calls for the same bundle share one compilation.
func (b *Bundler) Compile(staticPath string, kind domain.AssetKind, name string, sources []string) (string, error) {
	key := CacheKey(staticPath, kind, name)
	if out, ok := b.cache.Lookup(key); ok {
		return out, nil
	}

	v, err, _ := b.group.Do(key, func() (any, error) {
		if out, ok := b.cache.Lookup(key); ok {
			return out, nil
		}

		out, err := b.compile(staticPath, kind, name, sources)
		if err != nil {
			return "", err
		}

		b.cache.Record(key, out)
		return out, nil
	})
	if err != nil {
		return "", err
	}

	out, _ := v.(string)
	return out, nil
}

func (b *Bundler) compile(staticPath string, kind domain.AssetKind, name string, sources []string) (string, error) {
	wwwDir := domain.WWWPath(staticPath)

	content, err := b.concat(wwwDir, kind, sources)
	if err != nil {
		return "", zerr.With(err, "bundle", name)
	}

	ts := b.clock.Now().Unix()
	outName := TimestampedName(name, ts)
	for fileExists(filepath.Join(wwwDir, filepath.FromSlash(outName))) {
		ts++
		outName = TimestampedName(name, ts)
	}
	outPath := filepath.Join(wwwDir, filepath.FromSlash(outName))

	b.logger.Info(fmt.Sprintf("compiling %s", outPath))

	if err := WriteFileAtomic(outPath, content); err != nil {
		return "", zerr.With(errors.Join(domain.ErrBundleWriteFailed, err), "path", outPath)
	}

	b.removeStale(outPath, name)

	digest := fmt.Sprintf("%016x", xxhash.Sum64(content))
	if b.store != nil {
		record := domain.CompiledBundle{
			Name:        name,
			StaticPath:  staticPath,
			Kind:        kind.String(),
			SourcePaths: append([]string(nil), sources...),
			OutputPath:  outName,
			BuiltAt:     ts,
			Digest:      digest,
		}
		if err := b.store.Put(record); err != nil {
			b.logger.Warn(fmt.Sprintf("failed to record bundle %s: %v", outName, err))
		}
	}

	return outName, nil
}

// concat compresses every source in order and joins the results with newlines.
func (b *Bundler) concat(wwwDir string, kind domain.AssetKind, sources []string) ([]byte, error) {
	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		srcPath := filepath.Join(wwwDir, filepath.FromSlash(SourcePath(kind, src)))

		//nolint:gosec // Path is built from the post static tree and a template-pushed asset
		data, err := os.ReadFile(srcPath)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrSourceReadFailed, err), "path", srcPath)
		}

		b.logger.Debug(fmt.Sprintf("- compressing %s", src))
		compressed, err := b.compressor.Compress(kind, data)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrCompressionFailed, err), "path", srcPath)
		}
		parts = append(parts, string(compressed))
	}
	return []byte(strings.Join(parts, "\n")), nil
}

// removeStale deletes every other compiled version of the bundle next to outPath.
// Failures are logged and otherwise ignored.
func (b *Bundler) removeStale(outPath, name string) {
	dir := filepath.Dir(outPath)
	keep := filepath.Base(outPath)
	match := versionMatcher(name)

	entries, err := os.ReadDir(dir)
	if err != nil {
		b.logger.Warn(fmt.Sprintf("failed to list %s for stale bundles: %v", dir, err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == keep || !match.MatchString(entry.Name()) {
			continue
		}
		stale := filepath.Join(dir, entry.Name())
		if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn(fmt.Sprintf("failed to remove stale bundle %s: %v", stale, err))
		}
	}
}

// WriteFileAtomic writes data to a temp file in the target directory and renames it
// into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
