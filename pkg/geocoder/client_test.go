package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		AccessToken: "pk.test-token",
		BaseURL:     srv.URL,
	}, zap.NewNop())
}

func TestForward(t *testing.T) {
	t.Run("builds autocomplete request and parses features", func(t *testing.T) {
		var gotURL *url.URL
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotURL = r.URL
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"features":[
				{"id":"a","place_name":"Paris, France","center":[2.35,48.85]},
				{"id":"b","place_name":"Paris, Texas, United States","center":[-95.56,33.66]}
			]}`))
		})

		features, err := client.Forward(context.Background(), "Par")
		require.NoError(t, err)

		assert.Equal(t, "/Par.json", gotURL.Path)
		assert.Equal(t, "true", gotURL.Query().Get("autocomplete"))
		assert.Equal(t, "5", gotURL.Query().Get("limit"))
		assert.Equal(t, "pk.test-token", gotURL.Query().Get("access_token"))

		require.Len(t, features, 2)
		assert.Equal(t, "a", features[0].ID)
		assert.Equal(t, "Paris, France", features[0].DisplayName)
		assert.Equal(t, 2.35, features[0].Center.Longitude)
		assert.Equal(t, 48.85, features[0].Center.Latitude)
	})

	t.Run("path-escapes the query", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"features":[]}`))
		})

		_, err := client.Forward(context.Background(), "Kebun Binatang/Ragunan")
		require.NoError(t, err)
		assert.Equal(t, "/Kebun%20Binatang%2FRagunan.json", gotPath)
	})

	t.Run("missing features array is an empty result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		features, err := client.Forward(context.Background(), "Paris")
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("malformed center is skipped", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features":[
				{"id":"a","place_name":"Nowhere","center":[1.0]},
				{"id":"b","place_name":"Somewhere","center":[3.0,4.0]}
			]}`))
		})

		features, err := client.Forward(context.Background(), "where")
		require.NoError(t, err)
		require.Len(t, features, 1)
		assert.Equal(t, "b", features[0].ID)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Forward(context.Background(), "Paris")
		assert.Error(t, err)
	})

	t.Run("parse failure is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		})

		_, err := client.Forward(context.Background(), "Paris")
		assert.Error(t, err)
	})
}

func TestReverse(t *testing.T) {
	var gotURL *url.URL
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL
		_, _ = w.Write([]byte(`{"features":[
			{"id":"poi.1","place_name":"Monas, Jakarta","center":[106.8272,-6.1754]}
		]}`))
	})

	features, err := client.Reverse(context.Background(), 106.8272, -6.1754)
	require.NoError(t, err)

	assert.Equal(t, "/106.8272,-6.1754.json", gotURL.Path)
	assert.Equal(t, "pk.test-token", gotURL.Query().Get("access_token"))

	require.Len(t, features, 1)
	assert.Equal(t, "Monas, Jakarta", features[0].DisplayName)
}
