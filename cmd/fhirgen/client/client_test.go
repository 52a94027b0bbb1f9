package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSendsBundle(t *testing.T) {
	var received []byte
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, zerolog.Nop())
	require.NoError(t, c.Push([]byte(`{"resourceType":"Bundle"}`)))
	assert.Equal(t, `{"resourceType":"Bundle"}`, string(received))
	assert.Equal(t, "application/fhir+json", contentType)
}

func TestPushRetriesTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, zerolog.Nop())
	require.NoError(t, c.Push([]byte(`{}`)))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestPushReportsClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad bundle", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c := NewUploadClient(server.URL, zerolog.Nop())
	err := c.Push([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestPushFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"resourceType":"Bundle"}`), 0o644))

	c := NewUploadClient(server.URL, zerolog.Nop())
	assert.NoError(t, c.PushFile(path))
	assert.Error(t, c.PushFile(filepath.Join(t.TempDir(), "missing.json")))
}
