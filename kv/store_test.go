package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "pontosync.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("ausente")
			assert.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, store.Set("pendentes", []byte(`[{"kind":"ponto-registro"}]`)))

			got, ok, err := store.Get("pendentes")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `[{"kind":"ponto-registro"}]`, string(got))
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Set("k", []byte("v1")))
			assert.NoError(t, store.Set("k", []byte("v2")))

			got, ok, err := store.Get("k")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("v2"), got)
		})
	}
}

func TestStoreRemove(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Set("k", []byte("v")))
			assert.NoError(t, store.Remove("k"))

			_, ok, err := store.Get("k")
			assert.NoError(t, err)
			assert.False(t, ok)

			// removing twice is not an error
			assert.NoError(t, store.Remove("k"))
		})
	}
}
