package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dprasetya/storyline/internal/client/creds"
	"github.com/stretchr/testify/assert"
)

func TestPushKeyProvider(t *testing.T) {
	t.Run("configured key wins without network", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer ts.Close()

		p := NewPushKeyProvider(NewRESTClient(ts.URL, creds.NewMemStore()), "configured-key")
		assert.Equal(t, "configured-key", p.Key(context.Background()))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("server key fetched once", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": false, "key": "server-key"})
		}))
		defer ts.Close()

		p := NewPushKeyProvider(NewRESTClient(ts.URL, creds.NewMemStore()), "")
		assert.Equal(t, "server-key", p.Key(context.Background()))
		assert.Equal(t, "server-key", p.Key(context.Background()))
		assert.Equal(t, int32(1), calls.Load(), "repeated lookups reuse the first result")
	})

	t.Run("definitive failure is cached", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		p := NewPushKeyProvider(NewRESTClient(ts.URL, creds.NewMemStore()), "")
		assert.Empty(t, p.Key(context.Background()))
		assert.Empty(t, p.Key(context.Background()))
		assert.Equal(t, int32(1), calls.Load(), "no retry after the first definitive failure")
	})
}
