package assets_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports/mocks"
	"go.trai.ch/postpub/internal/engine/assets"
	"go.uber.org/mock/gomock"
)

const testEpoch = 1700000000

// trimCompressor strips surrounding whitespace, enough to observe that sources went
// through the compressor.
func trimCompressor(_ domain.AssetKind, src []byte) ([]byte, error) {
	return bytes.TrimSpace(src), nil
}

type fixture struct {
	staticPath string
	clock      *clockwork.FakeClock
	compressor *mocks.MockCompressor
	logger     *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		staticPath: filepath.Join(t.TempDir(), "posts", "demo"),
		clock:      clockwork.NewFakeClockAt(time.Unix(testEpoch, 0)),
		compressor: mocks.NewMockCompressor(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) bundler(compile bool) *assets.Bundler {
	return assets.NewBundler(f.compressor, nil, f.logger, assets.Options{
		Compile: compile,
		CDNBase: "https://cdn.example.com/project",
	}).WithClock(f.clock)
}

func (f *fixture) writeSource(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(f.staticPath, "www", filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func (f *fixture) readOutput(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.staticPath, "www", filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) versions(t *testing.T, dir, pattern string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(f.staticPath, "www", dir, pattern))
	require.NoError(t, err)
	return matches
}

func TestBundler_CompileWritesBundle(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/a.js", "  var a = 1;  ")
	f.writeSource(t, "js/b.js", "var b = 2;\n")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor).Times(2)

	b := f.bundler(true)
	out, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js", "js/b.js"})
	require.NoError(t, err)

	assert.Equal(t, "js/app.min.1700000000.js", out)
	assert.Equal(t, "var a = 1;\nvar b = 2;", f.readOutput(t, out))
}

func TestBundler_CacheHitSkipsCompilation(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/a.js", "var a;")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor).Times(1)

	b := f.bundler(true)
	first, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	second, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.versions(t, "js", "app.min.*.js"), 1)
}

func TestBundler_ResetRecompilesWithNewName(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/a.js", "var a;")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor).Times(2)

	b := f.bundler(true)
	first, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)

	// Same second: the name must still change.
	b.Reset()
	second, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "js/app.min.1700000001.js", second)

	versions := f.versions(t, "js", "app.min.*.js")
	require.Len(t, versions, 1, "stale versions are removed")
	assert.Equal(t, "app.min.1700000001.js", filepath.Base(versions[0]))
}

func TestBundler_StaleCleanupAcrossBuilds(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/x.js", "var x;")
	f.writeSource(t, "js/x.v2.js", "keep me")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor).Times(2)

	_, err := f.bundler(true).Compile(f.staticPath, domain.KindJS, "js/x.js", []string{"js/x.js"})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	out, err := f.bundler(true).Compile(f.staticPath, domain.KindJS, "js/x.js", []string{"js/x.js"})
	require.NoError(t, err)

	assert.Equal(t, "js/x.1700003600.js", out)
	assert.Len(t, f.versions(t, "js", "x.[0-9]*.js"), 1)
	assert.FileExists(t, filepath.Join(f.staticPath, "www", "js", "x.js"), "sources are never removed")
	assert.FileExists(t, filepath.Join(f.staticPath, "www", "js", "x.v2.js"))
}

func TestBundler_CompressionFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/a.js", "var a;")
	f.writeSource(t, "js/bad.js", "var (")

	gomock.InOrder(
		f.compressor.EXPECT().Compress(domain.KindJS, []byte("var a;")).DoAndReturn(trimCompressor),
		f.compressor.EXPECT().Compress(domain.KindJS, []byte("var (")).Return(nil, errors.New("unexpected (")),
		f.compressor.EXPECT().Compress(domain.KindJS, []byte("var a;")).DoAndReturn(trimCompressor),
	)

	b := f.bundler(true)
	_, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js", "js/bad.js"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompressionFailed))
	assert.Empty(t, f.versions(t, "js", "app.min.*.js"))

	// Nothing was recorded, so a corrected pass compiles again.
	out, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)
	assert.Equal(t, "var a;", f.readOutput(t, out))
}

func TestBundler_MissingSource(t *testing.T) {
	f := newFixture(t)

	_, err := f.bundler(true).Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/missing.js"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourceReadFailed))
}

func TestBundler_EmptyBundle(t *testing.T) {
	f := newFixture(t)

	out, err := f.bundler(true).Compile(f.staticPath, domain.KindCSS, "css/app.min.css", nil)
	require.NoError(t, err)
	assert.Equal(t, "css/app.min.1700000000.css", out)
	assert.Empty(t, f.readOutput(t, out))
}

func TestBundler_LessSources(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "styles/card.less.css", ".card{}")
	f.writeSource(t, "lessons/timeless.less.css", ".timeless{}")
	f.compressor.EXPECT().Compress(domain.KindCSS, gomock.Any()).DoAndReturn(trimCompressor).Times(2)

	out, err := f.bundler(true).Compile(f.staticPath, domain.KindCSS, "styles/card.less",
		[]string{"styles/card.less", "lessons/timeless.less"})
	require.NoError(t, err)

	assert.Equal(t, "styles/card.less.1700000000.css", out)
	assert.Equal(t, ".card{}\n.timeless{}", f.readOutput(t, out))
}

func TestBundler_ConcurrentCompileSharesResult(t *testing.T) {
	f := newFixture(t)
	f.writeSource(t, "js/a.js", "var a;")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor).Times(1)

	b := f.bundler(true)
	const workers = 16
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
			assert.NoError(t, err)
			results[i] = out
		}()
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, "js/app.min.1700000000.js", out)
	}
	assert.Len(t, f.versions(t, "js", "app.min.*.js"), 1)
}

func TestBundler_RecordsCompiledBundle(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBundleStore(ctrl)
	f.writeSource(t, "js/a.js", "var a;")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor)

	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(bundle domain.CompiledBundle) error {
		assert.Equal(t, "js/app.min.js", bundle.Name)
		assert.Equal(t, f.staticPath, bundle.StaticPath)
		assert.Equal(t, "js", bundle.Kind)
		assert.Equal(t, []string{"js/a.js"}, bundle.SourcePaths)
		assert.Equal(t, "js/app.min.1700000000.js", bundle.OutputPath)
		assert.Equal(t, int64(testEpoch), bundle.BuiltAt)
		assert.Len(t, bundle.Digest, 16)
		return nil
	})

	b := assets.NewBundler(f.compressor, store, f.logger, assets.Options{Compile: true}).WithClock(f.clock)
	_, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)
}

func TestBundler_StoreFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBundleStore(ctrl)
	f.writeSource(t, "js/a.js", "var a;")
	f.compressor.EXPECT().Compress(domain.KindJS, gomock.Any()).DoAndReturn(trimCompressor)
	store.EXPECT().Put(gomock.Any()).Return(errors.New("disk full"))

	b := assets.NewBundler(f.compressor, store, f.logger, assets.Options{Compile: true}).WithClock(f.clock)
	out, err := b.Compile(f.staticPath, domain.KindJS, "js/app.min.js", []string{"js/a.js"})
	require.NoError(t, err)
	assert.Equal(t, "var a;", f.readOutput(t, out))
}
