// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/tajmahal/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/tajmahal/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/tajmahal/internal/application"
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// Messages shown when the review form is refused.
const (
	msgEmptyComment = "Review comment cannot be empty"
	msgNoRating     = "Please provide a star rating"
	msgBadToken     = "Your session expired, please submit the review again"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	reviewSvc     *application.ReviewService
	restaurantSvc *application.RestaurantService
	defaultAvatar string
	logger        *slog.Logger
	now           func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
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

// Details renders the restaurant details page with the review count and average.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviewSvc.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to compute review summary", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	restaurant := h.restaurantSvc.Get()
	page := toDetailsViewModel(restaurant, h.restaurantSvc.Today(h.now()), summary)

	h.render(w, r, http.StatusOK, templates.Layout(restaurant.Name, templates.Details(page)))
}

// Reviews renders the review list with an empty submission form.
func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	h.renderReviews(w, r, http.StatusOK, vm.ReviewFormViewModel{})
}

// SubmitReview handles the review form. Accepted reviews redirect back to the
// list; rejected ones re-render the form with the user's input and a message.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		h.renderReviews(w, r, http.StatusForbidden, vm.ReviewFormViewModel{Error: msgBadToken})
		return
	}

	// A missing or non-numeric rating counts as no rating.
	rating, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("rating")))

	review := model.Review{
		Author:    strings.TrimSpace(r.FormValue("author")),
		AvatarURL: h.defaultAvatar,
		Comment:   r.FormValue("comment"),
		Rating:    rating,
	}

	result, err := h.reviewSvc.Submit(r.Context(), review)
	if err != nil {
		h.logger.Error("failed to submit review", "author", review.Author, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if result.Rejected() {
		form := vm.ReviewFormViewModel{
			Author:  review.Author,
			Comment: review.Comment,
			Rating:  review.Rating,
			Error:   rejectionMessage(review),
		}
		h.renderReviews(w, r, http.StatusUnprocessableEntity, form)
		return
	}

	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}

func (h *Handler) renderReviews(w http.ResponseWriter, r *http.Request, status int, form vm.ReviewFormViewModel) {
	reviews, err := h.reviewSvc.CurrentReviews(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	form.CSRFToken = csrfToken(w, r)
	form.ActionURL = "/reviews"

	restaurant := h.restaurantSvc.Get()
	page := vm.ReviewsPageViewModel{
		RestaurantName: restaurant.Name,
		BackPath:       "/",
		Reviews:        toReviewViewModels(reviews),
		Form:           form,
	}

	h.render(w, r, status, templates.Layout(restaurant.Name+" - Avis", templates.Reviews(page)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

// rejectionMessage picks the user-facing message for an invalid review,
// checking the comment before the rating.
func rejectionMessage(review model.Review) string {
	if review.Comment == "" {
		return msgEmptyComment
	}
	return msgNoRating
}
