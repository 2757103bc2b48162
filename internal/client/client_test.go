package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/restaurant", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Taj Mahal","type":"Indien","today":"Lundi","dine_in":true}`))
	})
	mux.HandleFunc("GET /api/v1/reviews", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"author":"A","comment":"bon","rating":4},{"author":"B","comment":"moyen","rating":2}]`))
	})
	mux.HandleFunc("POST /api/v1/reviews", func(w http.ResponseWriter, r *http.Request) {
		var in Review
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid JSON body"}`))
			return
		}
		if in.Comment == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"invalid review: comment is empty"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("GET /api/v1/reviews/summary", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count":5,"average":4,"average_label":"4.0","distribution":{"1":0,"2":1,"3":0,"4":2,"5":2}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_DefaultsAndTrim(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())
	assert.Equal(t, "http://example.test", New(" http://example.test/ ").BaseURL())
}

func TestClient_Restaurant(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, WithHTTPClient(srv.Client()))

	got, err := c.Restaurant(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Taj Mahal", got.Name)
	assert.Equal(t, "Lundi", got.Today)
	assert.True(t, got.DineIn)
}

func TestClient_Reviews(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	got, err := c.Reviews(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bon", got[0].Comment)
	assert.Equal(t, 2, got[1].Rating)
}

func TestClient_AddReview(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	got, err := c.AddReview(context.Background(), Review{Author: "Z", Comment: "Great!", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Great!", got.Comment)
	assert.Equal(t, 5, got.Rating)
}

func TestClient_AddReview_Rejected(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.AddReview(context.Background(), Review{Rating: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPI)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid review: comment is empty", apiErr.Message)
}

func TestClient_Summary(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	got, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, "4.0", got.AverageLabel)
	assert.Equal(t, 2, got.Distribution["5"])
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Reviews(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Contains(t, err.Error(), "status=502")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Restaurant(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAPI)
}
