// Package httphandler is the JSON API driving adapter.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/tajmahal/internal/application"
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// maxRequestBody caps the size of a submitted review payload.
const maxRequestBody = 64 << 10

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	reviewSvc     *application.ReviewService
	restaurantSvc *application.RestaurantService
	defaultAvatar string
	logger        *slog.Logger
	now           func() time.Time
}

// NewHandler creates a Handler with all required dependencies. defaultAvatar
// is used for submitted reviews that carry no avatar URL.
func NewHandler(
	reviewSvc *application.ReviewService,
	restaurantSvc *application.RestaurantService,
	defaultAvatar string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		reviewSvc:     reviewSvc,
		restaurantSvc: restaurantSvc,
		defaultAvatar: defaultAvatar,
		logger:        logger,
		now:           time.Now,
	}
}

// RegisterAPIRoutes registers all JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/restaurant", h.GetRestaurant)
	mux.HandleFunc("GET /api/v1/reviews", h.ListReviews)
	mux.HandleFunc("POST /api/v1/reviews", h.SubmitReview)
	mux.HandleFunc("GET /api/v1/reviews/summary", h.GetSummary)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// NewServeMux creates an http.Handler with all API routes registered and
// wrapped with the standard middleware.
func NewServeMux(h *Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger, allowedOrigins)
}

// GetRestaurant returns the restaurant record and today's day label.
func (h *Handler) GetRestaurant(w http.ResponseWriter, _ *http.Request) {
	restaurant := h.restaurantSvc.Get()
	writeJSON(w, http.StatusOK, toRestaurantResponse(restaurant, h.restaurantSvc.Today(h.now())))
}

// ListReviews returns all reviews, newest first.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.CurrentReviews(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewResponse(review))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SubmitReview validates and stores a new review. A rejected review yields
// 422 with the rejection reason.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review := model.Review{
		Author:    req.Author,
		AvatarURL: req.AvatarURL,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}
	if review.AvatarURL == "" {
		review.AvatarURL = h.defaultAvatar
	}

	result, err := h.reviewSvc.Submit(r.Context(), review)
	if err != nil {
		h.logger.Error("failed to submit review", "author", review.Author, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if result.Rejected() {
		writeError(w, http.StatusUnprocessableEntity, result.Reason.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(review))
}

// GetSummary returns the review count, average and rating distribution.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviewSvc.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to compute review summary", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}
