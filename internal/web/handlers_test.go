// ===== internal/web/handlers_test.go =====
package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulagen/internal/config"
	"ulagen/internal/ntp"
	"ulagen/internal/oui"
	"ulagen/internal/ula"
)

const testRegistry = `00-0D-3A   (hex)		Microsoft Corp.
B8-27-EB   (hex)		Raspberry Pi Foundation
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "oui.txt")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0o644))

	store, err := oui.NewStore(path)
	require.NoError(t, err)

	gen := &ula.Generator{
		Time:    &ntp.LiteralSource{Value: "dcf4268b208dd000"},
		Vendors: store,
	}

	return NewServer(config.DefaultConfig(), gen, store)
}

func TestHandleULAAPI(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ula?mac=00:0d:3a:00:00:01", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ULAResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fd58:e975:6519::/48", resp.ULA)
	assert.Equal(t, "000d3a000001", resp.MAC)
	assert.Equal(t, "Microsoft Corp.", resp.Vendor)
	assert.Equal(t, "020d3afffe000001", resp.EUI64)
}

func TestHandleULAAPITimeOverride(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ula?mac=b827eb123456&time=e4d50216.803d2f00", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ULAResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fdb5:cd61:44ef::/48", resp.ULA)
	assert.Equal(t, "e4d50216803d2f00", resp.Timestamp)
}

func TestHandleULAAPIErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"missing mac", "/api/ula", http.StatusBadRequest},
		{"bad characters", "/api/ula?mac=zz:zz:zz:zz:zz:zz", http.StatusBadRequest},
		{"unknown vendor", "/api/ula?mac=01:02:03:04:05:06", http.StatusNotFound},
		{"bad timestamp", "/api/ula?mac=000d3a000001&time=nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleRegistryAPI(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Entries int `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 2, status.Entries)
}

func TestHandleRootForm(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/?mac=00:0d:3a:00:00:01", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fd58:e975:6519::/48")
	assert.Contains(t, rec.Body.String(), "Microsoft Corp.")
}

func TestHandleRootError(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/?mac=01:00:d3:00:00:01", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not in the vendor registry")
}

func TestHandleRootUnknownPath(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
