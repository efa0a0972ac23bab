package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/adapters/cache"
	"go.chol.dev/cbuild/internal/core/domain"
)

func TestStore_GetMissAndSet(t *testing.T) {
	store := openTemp(t)

	if _, ok := store.Get("src/a.c"); ok {
		t.Fatal("expected miss for never-seen path")
	}

	store.Set("src/a.c", 1000)
	fp, ok := store.Get("src/a.c")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if fp != 1000 {
		t.Errorf("expected fingerprint 1000, got %d", fp)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	store := openTemp(t)

	store.Set("src/a.c", 1000)
	store.Set("src/a.c", 2000)
	store.Set("src/a.c", 3000)

	fp, _ := store.Get("src/a.c")
	if fp != 3000 {
		t.Errorf("expected last written fingerprint 3000, got %d", fp)
	}
	if store.Len() != 1 {
		t.Errorf("expected a single entry, got %d", store.Len())
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cbuild-cache")

	store1, err := cache.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	// Insertion order must not matter for persistence.
	store1.Set("src/z.c", 3)
	store1.Set("src/a.c", 1)
	store1.Set("src/m.h", 2)
	if err := store1.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store2, err := cache.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if store2.Len() != 3 {
		t.Fatalf("expected 3 entries after reload, got %d", store2.Len())
	}
	for p, want := range map[string]uint64{"src/a.c": 1, "src/m.h": 2, "src/z.c": 3} {
		got, ok := store2.Get(p)
		if !ok || got != want {
			t.Errorf("entry %q: got (%d, %v), want (%d, true)", p, got, ok, want)
		}
	}
}

func TestStore_AbsentFileIsEmpty(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", store.Len())
	}
}

func TestStore_LoadsPersistedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cbuild-cache")
	if err := os.WriteFile(path, []byte("\"src/a.c\" 1000\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := cache.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	fp, ok := store.Get("src/a.c")
	if !ok || fp != 1000 {
		t.Errorf("expected (1000, true), got (%d, %v)", fp, ok)
	}
}

func TestStore_CorruptedCache(t *testing.T) {
	cases := map[string]string{
		"missing leading quote": "src/a.c 1000\n",
		"unterminated quote":    "\"src/a.c 1000\n",
		"junk value":            "\"src/a.c\" banana\n",
		"second line malformed": "\"src/a.c\" 1000\nnope\n",
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if err := afero.WriteFile(fsys, ".cbuild-cache", []byte(contents), 0o644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			_, err := cache.Open(".cbuild-cache", cache.WithFs(fsys))
			if err == nil {
				t.Fatal("expected load to fail")
			}
			if !errors.Is(err, domain.ErrCacheCorrupted) {
				t.Errorf("expected ErrCacheCorrupted, got: %v", err)
			}
		})
	}
}

func TestStore_SaveOverwritesAndSorts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, ".cbuild-cache", []byte("\"stale/old.c\" 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := cache.Open(".cbuild-cache", cache.WithFs(fsys))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Set("b.c", 2)
	store.Set("a.c", 1)
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := afero.ReadFile(fsys, ".cbuild-cache")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "\"a.c\" 1\n\"b.c\" 2\n\"stale/old.c\" 1\n"
	if string(data) != want {
		t.Errorf("persisted file mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestStore_Dirty(t *testing.T) {
	store := openTemp(t)
	if store.Dirty() {
		t.Fatal("fresh store should not be dirty")
	}

	store.Set("src/a.c", 1000)
	if !store.Dirty() {
		t.Fatal("store should be dirty after a new entry")
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if store.Dirty() {
		t.Fatal("store should be clean after Save")
	}

	// Rewriting the same value is a no-op.
	store.Set("src/a.c", 1000)
	if store.Dirty() {
		t.Fatal("unchanged Set should not mark the store dirty")
	}
}

func openTemp(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(".cbuild-cache", cache.WithFs(afero.NewMemMapFs()))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return store
}
