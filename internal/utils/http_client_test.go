package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	require.NotNil(t, first.Client)
	require.NotNil(t, second.Client)
	assert.NotSame(t, first.Client, second.Client)
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.UserAgent()
	}))
	defer srv.Close()

	_, err := NewHTTPClient(WithUserAgent("linkup-cli/1.0")).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "linkup-cli/1.0", agent)
}

func TestNewHTTPClient_Retries(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		failures  int32
		status    int
		wantHits  int32
		wantFinal int
	}{
		{name: "server errors are retried", method: http.MethodGet, failures: 2, status: http.StatusInternalServerError, wantHits: 3, wantFinal: http.StatusOK},
		{name: "client errors are not", method: http.MethodGet, failures: 5, status: http.StatusNotFound, wantHits: 1, wantFinal: http.StatusNotFound},
		{name: "posts are never retried", method: http.MethodPost, failures: 5, status: http.StatusInternalServerError, wantHits: 1, wantFinal: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if hits.Add(1) <= tt.failures {
					w.WriteHeader(tt.status)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			resp, err := NewHTTPClient(WithRetries(3, time.Millisecond)).R().Execute(tt.method, srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFinal, resp.StatusCode())
			assert.Equal(t, tt.wantHits, hits.Load())
		})
	}
}
