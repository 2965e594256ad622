package scoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"loanguard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v4/scoring/pre-score/32975120", r.URL.Path)
		assert.Equal(t, "shared-secret", r.Header.Get("credential"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_error": false, "status": "approve"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "shared-secret")
	require.NoError(t, err)

	result, err := client.PreScore(context.Background(), 32975120)
	require.NoError(t, err)
	assert.False(t, result.HasError)
	assert.Equal(t, "approve", result.Status)
}

func TestPreScoreKeepsBaseURLPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/provider/api/v4/scoring/pre-score/32975120", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_error": false, "status": "rejected"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL+"/provider", "")
	require.NoError(t, err)

	result, err := client.PreScore(context.Background(), 32975120)
	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
}

func TestPreScoreProviderDataError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"has_error": true, "status": ""}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "")
	require.NoError(t, err)

	result, err := client.PreScore(context.Background(), 32975120)
	require.NoError(t, err)
	assert.True(t, result.HasError)
}

func TestPreScoreNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.PreScore(context.Background(), 32975120)
	assert.ErrorIs(t, err, domain.ErrScoringUnavailable)
}

func TestPreScoreTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewHTTPClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.PreScore(context.Background(), 32975120)
	assert.ErrorIs(t, err, domain.ErrScoringUnavailable)
}

func TestPreScoreMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.PreScore(context.Background(), 32975120)
	assert.ErrorIs(t, err, domain.ErrScoringUnavailable)
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient("not-a-url", "")
	assert.Error(t, err)
}
