package driven

import (
	"context"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// ReviewStore defines the driven port for holding the ordered review
// collection. Implementations keep reviews newest first.
type ReviewStore interface {
	// List returns a snapshot of all reviews, most recently added first.
	// The returned slice is owned by the caller.
	List(ctx context.Context) ([]model.Review, error)
	// Add inserts review at the head of the collection. An invalid review is
	// refused with an error wrapping model.ErrInvalidReview and leaves the
	// collection untouched.
	Add(ctx context.Context, review model.Review) error
	Count(ctx context.Context) (int, error)
}
