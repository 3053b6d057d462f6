package latincy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexicon-tools/logeion/internal/lemma"
)

func newAnnotationServer(t *testing.T, lemmas map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"status": "ok",
			"models": []string{"la_core_web_lg"},
		})
	})
	mux.HandleFunc("/annotate", func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Text  string `json:"text"`
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "la_core_web_lg", request.Model)

		tokens := []lemma.Token{}
		if l, ok := lemmas[request.Text]; ok {
			tokens = append(tokens, lemma.Token{Text: request.Text, Lemma: l, Pos: "VERB"})
		}
		writeJSON(t, w, map[string]any{"tokens": tokens})
	})
	return httptest.NewServer(mux)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_Lemmatize(t *testing.T) {
	srv := newAnnotationServer(t, map[string]string{
		"amo":     "amare",
		"puellam": "puella",
	})
	defer srv.Close()

	client := NewClient(srv.URL, "la_core_web_lg", 5*time.Second, 1)
	defer func() {
		require.NoError(t, client.Close())
	}()

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "inflected verb", word: "amo", want: "amare"},
		{name: "inflected noun", word: "puellam", want: "puella"},
		{name: "no tokens falls back to the input", word: "!!!", want: "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Lemmatize(context.Background(), tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Lemmatize_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "la_core_web_lg", 5*time.Second, 1)
	defer func() {
		require.NoError(t, client.Close())
	}()

	_, err := client.Lemmatize(context.Background(), "amo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response error 500")
}

func TestClient_Lemmatize_ServiceUnreachable(t *testing.T) {
	// Reserve a port and close it again so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "la_core_web_lg", time.Second, 1)
	defer func() {
		require.NoError(t, client.Close())
	}()

	_, err := client.Lemmatize(context.Background(), "amo")
	assert.Error(t, err)
}

func TestClient_Ready(t *testing.T) {
	t.Run("model loaded", func(t *testing.T) {
		srv := newAnnotationServer(t, nil)
		defer srv.Close()

		client := NewClient(srv.URL, "la_core_web_lg", 5*time.Second, 1)
		defer func() {
			require.NoError(t, client.Close())
		}()

		assert.NoError(t, client.Ready(context.Background()))
	})

	t.Run("model not loaded", func(t *testing.T) {
		srv := newAnnotationServer(t, nil)
		defer srv.Close()

		client := NewClient(srv.URL, "la_core_web_trf", 5*time.Second, 1)
		defer func() {
			require.NoError(t, client.Close())
		}()

		err := client.Ready(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "la_core_web_trf")
	})
}

func TestClient_WaitReady(t *testing.T) {
	// The service fails its first two probes, then reports the model.
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "loading", http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, map[string]any{"status": "ok", "models": []string{"la_core_web_lg"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "la_core_web_lg", 5*time.Second, 5)
	defer func() {
		require.NoError(t, client.Close())
	}()

	require.NoError(t, client.WaitReady(context.Background()))
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
