package httpclient

import (
	"context"
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, 0)
	status, body, err := client.SendRequest(context.Background(), HttpRequest{
		URL:     srv.URL + "/users",
		Headers: map[string]string{"Authorization": "Bearer token"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func TestSendRequestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(time.Second, 0)
	_, _, err := client.SendRequest(context.Background(), HttpRequest{URL: url})
	require.Error(t, err)
}

func TestSendRequestRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 65)))
	}))
	defer srv.Close()

	client := NewClient(time.Second, 64)
	status, body, err := client.SendRequest(context.Background(), HttpRequest{URL: srv.URL})
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, body)

	exact := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer exact.Close()

	_, body, err = client.SendRequest(context.Background(), HttpRequest{URL: exact.URL})
	require.NoError(t, err)
	assert.Len(t, body, 64)
}
