package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/postpub/internal/adapters/cas"
	"go.trai.ch/postpub/internal/core/domain"
)

func bundle(staticPath, name string, ts int64) domain.CompiledBundle {
	return domain.CompiledBundle{
		Name:        name,
		StaticPath:  staticPath,
		Kind:        "js",
		SourcePaths: []string{"js/a.js", "js/b.js"},
		OutputPath:  "js/app.min.1700000000.js",
		BuiltAt:     ts,
		Digest:      "0123456789abcdef",
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(filepath.Join(t.TempDir(), "bundles"))
	want := bundle("posts/demo", "js/app.min.js", 1700000000)

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(want))

		got, err := store.Get("posts/demo", "js/app.min.js")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get("posts/other", "js/app.min.js")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_PutReplaces(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	require.NoError(t, store.Put(bundle("posts/demo", "js/app.min.js", 1)))
	require.NoError(t, store.Put(bundle("posts/demo", "js/app.min.js", 2)))

	got, err := store.Get("posts/demo", "js/app.min.js")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.BuiltAt)

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ListAndDelete(t *testing.T) {
	store := cas.NewStore(t.TempDir())

	require.NoError(t, store.Put(bundle("posts/b", "js/app.min.js", 1)))
	require.NoError(t, store.Put(bundle("posts/a", "css/app.min.css", 1)))
	require.NoError(t, store.Put(bundle("posts/a", "js/app.min.js", 1)))

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "posts/a", all[0].StaticPath)
	assert.Equal(t, "css/app.min.css", all[0].Name)
	assert.Equal(t, "js/app.min.js", all[1].Name)
	assert.Equal(t, "posts/b", all[2].StaticPath)

	require.NoError(t, store.Delete("posts/a", "js/app.min.js"))
	require.NoError(t, store.Delete("posts/a", "js/app.min.js"), "deleting twice is fine")

	all, err = store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ListMissingDir(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "never-created"))

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore(dir)
	require.NoError(t, store.Put(bundle("posts/demo", "js/app.min.js", 1)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, err = store.Get("posts/demo", "js/app.min.js")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnmarshalFailed))

	_, err = store.List()
	assert.True(t, errors.Is(err, domain.ErrStoreUnmarshalFailed))
}

func TestStore_DefaultDir(t *testing.T) {
	assert.Equal(t, domain.DefaultStorePath(), cas.NewStore("").Dir())
}
