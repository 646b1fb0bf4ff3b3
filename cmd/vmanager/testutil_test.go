package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/vmanager/internal/catalog"
	"github.com/vmunix/vmanager/internal/migrations"
	"github.com/vmunix/vmanager/internal/storeserver"
)

// mockServer creates an httptest.Server with common test patterns.
// It provides a fluent API for setting up expected request verification
// and response configuration.
type mockServer struct {
	t          *testing.T
	handler    http.HandlerFunc
	expectPath string
	expectMeth string
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t}
}

// ExpectPath sets the expected request path and verifies it in the handler.
func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

// ExpectGET sets the expected HTTP method to GET.
func (m *mockServer) ExpectGET() *mockServer {
	m.expectMeth = http.MethodGet
	return m
}

// RespondJSON sets up a handler that responds with JSON-encoded data.
func (m *mockServer) RespondJSON(v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(m.t, json.NewEncoder(w).Encode(v))
	}
	return m
}

// RespondError sets up a handler that responds with an error status and message.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(message))
	}
	return m
}

// Build creates the httptest.Server and closes it when the test ends.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	})

	srv := httptest.NewServer(handler)
	m.t.Cleanup(srv.Close)
	return srv
}

// testSeed is the catalog every store-backed command test starts from.
var testSeed = storeserver.SeedData{
	Authors: []catalog.Author{
		{ID: 1, Name: "Jane Doe", Videos: []catalog.Video{{
			ID:     1,
			Name:   "Night Shift",
			CatIDs: []int{1},
			Formats: catalog.NewFormats(
				catalog.FormatEntry{Label: "one", Format: catalog.Format{Res: catalog.ResolutionOf("1080p"), Size: catalog.SizeOf(1000)}},
				catalog.FormatEntry{Label: "two", Format: catalog.Format{Res: catalog.ResolutionOf("720p"), Size: catalog.SizeOf(600)}},
			),
			ReleaseDate: "2018-08-09",
		}}},
		{ID: 2, Name: "John Roe", Videos: []catalog.Video{{
			ID:          2,
			Name:        "Álbum Blanco",
			CatIDs:      []int{2, 3},
			Formats:     catalog.NewFormats(catalog.FormatEntry{Label: "one", Format: catalog.Format{Res: catalog.ResolutionOf("480p"), Size: catalog.SizeOf(300)}}),
			ReleaseDate: "2020-01-15",
		}}},
		{ID: 3, Name: "Ana Silva", Videos: []catalog.Video{}},
	},
	Categories: []catalog.Category{
		{ID: 1, Name: "Thriller"},
		{ID: 2, Name: "Comedy"},
		{ID: 3, Name: "Drama"},
	},
}

// newTestStore starts a seeded in-memory store and returns its URL and the
// repository behind it.
func newTestStore(t *testing.T) (string, *storeserver.Store) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)

	store := storeserver.NewStore(db)
	require.NoError(t, store.Load(context.Background(), testSeed))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(storeserver.New(store, logger).Handler())
	t.Cleanup(srv.Close)
	return srv.URL, store
}

// isolateConfig keeps config discovery away from the developer's files.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("VMANAGER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

// execute runs vmanager with args against the store at storeURL and
// returns stdout.
func execute(t *testing.T, storeURL, stdin string, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	if storeURL != "" {
		args = append([]string{"--store", storeURL}, args...)
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
