package ratesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"fuente": "oficial",
			"nombre": "Oficial",
			"compra": null,
			"venta": null,
			"promedio": 36.42,
			"fechaActualizacion": "2025-06-15T12:00:00.000Z"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(context.Background())

	require.NoError(t, err)
	assert.True(t, entry.Value.Equal(decimal.NewFromFloat(36.42)))
	assert.False(t, entry.FetchedAt.IsZero(), "FetchedAt should be stamped locally")
}

func TestFetchRate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(context.Background())

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchRate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(context.Background())

	require.Error(t, err)
	assert.Nil(t, entry)
}

func TestFetchRate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut it down before the request

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(context.Background())

	require.Error(t, err)
	assert.Nil(t, entry)
}

func TestFetchRate_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(ctx)

	require.Error(t, err)
	assert.Nil(t, entry)
}

func TestFetchRate_NullPromedio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fuente":"oficial","promedio":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	entry, err := client.FetchRate(context.Background())

	// A null average decodes as zero; the rate service rejects it.
	require.NoError(t, err)
	assert.True(t, entry.Value.IsZero())
}
