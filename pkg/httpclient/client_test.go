package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wpwhiz/signalwire-woo/pkg/httpclient"
)

func setupMockServer() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "success"}`))
	})
	handler.HandleFunc("/form", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(r.PostForm.Get("Body")))
	})
	return httptest.NewServer(handler)
}

func TestHttpClient_Get(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL+"/test", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, `{"message": "success"}`, string(body))
}

func TestHttpClient_Post(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)
	ctx := context.Background()

	resp, err := client.Post(ctx, server.URL+"/test", nil, map[string]string{"X-Test": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, `{"message": "success"}`, string(body))
}

func TestHttpClient_PostForm(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)
	ctx := context.Background()

	form := url.Values{}
	form.Set("Body", "hello world")

	resp, err := client.PostForm(ctx, server.URL+"/form", form, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(body))
}

func TestHttpClient_Do(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)
	ctx := context.Background()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/test", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
