package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

// SubmitResult is the outcome of a review submission. A rejected submission
// carries a Reason wrapping model.ErrInvalidReview.
type SubmitResult struct {
	Accepted bool
	Reason   error
}

// Rejected reports whether the submission was refused.
func (r SubmitResult) Rejected() bool {
	return !r.Accepted
}

// ReviewService owns the write path into the review store and the derived
// statistics. It depends only on the ReviewStore port.
type ReviewService struct {
	store  driven.ReviewStore
	feed   *changeFeed
	logger *slog.Logger
}

// NewReviewService creates a ReviewService over store.
func NewReviewService(store driven.ReviewStore, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		feed:   newChangeFeed(),
		logger: logger,
	}
}

// CurrentReviews returns a snapshot of all reviews, newest first.
func (s *ReviewService) CurrentReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Submit validates review and, when valid, inserts it at the head of the
// list. Invalid input is reported through the result, never as an error; the
// error return is reserved for store failures. A rejected submission leaves
// the store untouched.
func (s *ReviewService) Submit(ctx context.Context, review model.Review) (SubmitResult, error) {
	if err := review.Validate(); err != nil {
		s.logger.Debug("review rejected", "author", review.Author, "reason", err)
		return SubmitResult{Reason: err}, nil
	}

	if err := s.store.Add(ctx, review); err != nil {
		if errors.Is(err, model.ErrInvalidReview) {
			return SubmitResult{Reason: err}, nil
		}
		return SubmitResult{}, fmt.Errorf("add review: %w", err)
	}

	s.logger.Info("review accepted", "author", review.Author, "rating", review.Rating)

	if s.feed.hasListeners() {
		reviews, err := s.store.List(ctx)
		if err != nil {
			// The review is stored; only the notification is lost.
			s.logger.Error("failed to load reviews for listeners", "error", err)
		} else {
			s.feed.publish(reviews)
		}
	}

	return SubmitResult{Accepted: true}, nil
}

// AverageRating returns the mean rating of all reviews, 0 when there are none.
func (s *ReviewService) AverageRating(ctx context.Context) (float64, error) {
	reviews, err := s.CurrentReviews(ctx)
	if err != nil {
		return 0, err
	}
	return model.AverageRating(reviews), nil
}

// Count returns the number of reviews held.
func (s *ReviewService) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// Summary returns count, average and distribution computed from a single
// snapshot, so the figures are consistent with each other.
func (s *ReviewService) Summary(ctx context.Context) (model.RatingSummary, error) {
	reviews, err := s.CurrentReviews(ctx)
	if err != nil {
		return model.RatingSummary{}, err
	}
	return model.Summarize(reviews), nil
}

// OnChange registers listener to be called synchronously after each accepted
// submission. The returned function unsubscribes it.
func (s *ReviewService) OnChange(listener ChangeListener) (unsubscribe func()) {
	return s.feed.subscribe(listener)
}

// SeedReviews inserts reviews into store so that they end up listed in the
// given order: the first element is added last and therefore shown first.
func SeedReviews(ctx context.Context, store driven.ReviewStore, reviews []model.Review) error {
	for i := len(reviews) - 1; i >= 0; i-- {
		if err := store.Add(ctx, reviews[i]); err != nil {
			return fmt.Errorf("seed review %d: %w", i, err)
		}
	}
	return nil
}
