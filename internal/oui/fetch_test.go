// ===== internal/oui/fetch_test.go =====
package oui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulagen/internal/ula"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureRegistry))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cache", "oui.txt")
	require.NoError(t, Fetch(srv.URL, path, 5*time.Second))

	store, err := NewStore(path)
	require.NoError(t, err)

	vendor, err := store.Lookup("B827EB")
	require.NoError(t, err)
	assert.Equal(t, "Raspberry Pi Foundation", vendor)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "oui.txt")
	err := Fetch(srv.URL, path, 5*time.Second)

	var acquisition *ula.AcquisitionError
	require.ErrorAs(t, err, &acquisition)
	assert.NoFileExists(t, path)
}

// A failed download must not clobber a good cached copy.
func TestFetchKeepsExistingCacheOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oui.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixtureRegistry), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	require.Error(t, Fetch(srv.URL, path, 5*time.Second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixtureRegistry, string(data))
}
