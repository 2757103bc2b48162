package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/tajmahal/internal/adapter/driven/memory"
	httphandler "github.com/ericfisherdev/tajmahal/internal/adapter/driving/http"
	"github.com/ericfisherdev/tajmahal/internal/application"
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

const testAvatar = "https://example.com/default.jpg"

// testTime is a Saturday.
var testTime = time.Date(2026, 10, 17, 12, 30, 0, 0, time.UTC)

// --- Mock implementations ---

type failingReviewStore struct {
	err error
}

func (m *failingReviewStore) List(_ context.Context) ([]model.Review, error) { return nil, m.err }
func (m *failingReviewStore) Add(_ context.Context, _ model.Review) error    { return m.err }
func (m *failingReviewStore) Count(_ context.Context) (int, error)          { return 0, m.err }

// --- Helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupMux creates a mux over store with a fixed clock.
func setupMux(t *testing.T, store driven.ReviewStore) http.Handler {
	t.Helper()
	reviewSvc := application.NewReviewService(store, testLogger())
	restaurantSvc := application.NewRestaurantService(memory.NewRestaurantRepo())
	h := httphandler.NewHandler(reviewSvc, restaurantSvc, testAvatar, testLogger())
	h.SetNow(func() time.Time { return testTime })
	return httphandler.NewServeMux(h, testLogger(), []string{"http://front.test"})
}

// setupSeededMux creates a mux over a memory store holding the seed reviews.
func setupSeededMux(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewReviewRepo()
	require.NoError(t, application.SeedReviews(context.Background(), store, memory.SeedReviews()))
	return setupMux(t, store)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	err := json.NewDecoder(rec.Body).Decode(v)
	require.NoError(t, err)
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestGetRestaurant(t *testing.T) {
	mux := setupSeededMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/restaurant", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp httphandler.RestaurantResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Taj Mahal", resp.Name)
	assert.Equal(t, "Indien", resp.Type)
	assert.Equal(t, "11h30 - 14h30・18h30 - 22h00", resp.Hours)
	assert.Equal(t, "Samedi", resp.Today)
	assert.Equal(t, "06 12 34 56 78", resp.Phone)
	assert.True(t, resp.DineIn)
	assert.True(t, resp.TakeAway)
}

func TestListReviews(t *testing.T) {
	tests := []struct {
		name       string
		mux        func(t *testing.T) http.Handler
		wantStatus int
		wantLen    int
	}{
		{
			name:       "empty store returns empty array",
			mux:        func(t *testing.T) http.Handler { return setupMux(t, memory.NewReviewRepo()) },
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "seeded store",
			mux:        setupSeededMux,
			wantStatus: http.StatusOK,
			wantLen:    5,
		},
		{
			name: "store error",
			mux: func(t *testing.T) http.Handler {
				return setupMux(t, &failingReviewStore{err: errors.New("db fail")})
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(tt.mux(t), http.MethodGet, "/api/v1/reviews", "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var resp []map[string]any
				decodeJSON(t, rec, &resp)
				assert.NotNil(t, resp)
				assert.Len(t, resp, tt.wantLen)
			}
		})
	}
}

func TestSubmitReview_Accepted(t *testing.T) {
	mux := setupSeededMux(t)

	rec := do(mux, http.MethodPost, "/api/v1/reviews", `{"author":"alice","comment":"Great!","rating":5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created httphandler.ReviewResponse
	decodeJSON(t, rec, &created)
	assert.Equal(t, "alice", created.Author)
	assert.Equal(t, testAvatar, created.AvatarURL)

	rec = do(mux, http.MethodGet, "/api/v1/reviews", "")
	var list []httphandler.ReviewResponse
	decodeJSON(t, rec, &list)
	require.Len(t, list, 6)
	assert.Equal(t, "Great!", list[0].Comment)
	assert.Equal(t, 5, list[0].Rating)

	rec = do(mux, http.MethodGet, "/api/v1/reviews/summary", "")
	var summary httphandler.SummaryResponse
	decodeJSON(t, rec, &summary)
	assert.Equal(t, 6, summary.Count)
	assert.InDelta(t, 25.0/6.0, summary.Average, 1e-9)
	assert.Equal(t, "4.2", summary.AverageLabel)
}

func TestSubmitReview_KeepsProvidedAvatar(t *testing.T) {
	mux := setupMux(t, memory.NewReviewRepo())

	rec := do(mux, http.MethodPost, "/api/v1/reviews",
		`{"author":"bob","avatar_url":"https://example.com/bob.png","comment":"ok","rating":3}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created httphandler.ReviewResponse
	decodeJSON(t, rec, &created)
	assert.Equal(t, "https://example.com/bob.png", created.AvatarURL)
}

func TestSubmitReview_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"empty comment", `{"comment":"","rating":5}`, http.StatusUnprocessableEntity, "comment is empty"},
		{"zero rating", `{"comment":"ok","rating":0}`, http.StatusUnprocessableEntity, "rating must be positive"},
		{"malformed json", `{"comment":`, http.StatusBadRequest, "invalid request body"},
		{"wrong type", `{"comment":"ok","rating":"five"}`, http.StatusBadRequest, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupSeededMux(t)

			rec := do(mux, http.MethodPost, "/api/v1/reviews", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp map[string]string
			decodeJSON(t, rec, &resp)
			assert.Contains(t, resp["error"], tt.wantError)

			rec = do(mux, http.MethodGet, "/api/v1/reviews/summary", "")
			var summary httphandler.SummaryResponse
			decodeJSON(t, rec, &summary)
			assert.Equal(t, 5, summary.Count, "store unchanged")
		})
	}
}

func TestSubmitReview_StoreError(t *testing.T) {
	mux := setupMux(t, &failingReviewStore{err: errors.New("db fail")})

	rec := do(mux, http.MethodPost, "/api/v1/reviews", `{"comment":"ok","rating":3}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetSummary(t *testing.T) {
	mux := setupSeededMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/reviews/summary", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.SummaryResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 5, resp.Count)
	assert.InDelta(t, 4.0, resp.Average, 1e-9)
	assert.Equal(t, "4.0", resp.AverageLabel)
	assert.Equal(t, map[string]int{"1": 0, "2": 1, "3": 0, "4": 2, "5": 2}, resp.Distribution)
}

func TestGetSummary_Empty(t *testing.T) {
	mux := setupMux(t, memory.NewReviewRepo())

	rec := do(mux, http.MethodGet, "/api/v1/reviews/summary", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.SummaryResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, 0.0, resp.Average)
	assert.Equal(t, "0.0", resp.AverageLabel)
}

func TestHealth(t *testing.T) {
	mux := setupMux(t, memory.NewReviewRepo())

	rec := do(mux, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "2026-10-17T12:30:00Z", resp["time"])
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupMux(t, memory.NewReviewRepo())

	rec := do(mux, http.MethodDelete, "/api/v1/reviews", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	mux := setupMux(t, memory.NewReviewRepo())

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
		req.Header.Set("Origin", "http://front.test")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, "http://front.test", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/reviews", nil)
		req.Header.Set("Origin", "http://front.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := httphandler.ApplyMiddleware(panicky, testLogger(), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "internal server error", resp["error"])
}

func TestRecoveryMiddleware_AfterResponseStarted(t *testing.T) {
	partial := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	})
	handler := httphandler.ApplyMiddleware(partial, testLogger(), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
