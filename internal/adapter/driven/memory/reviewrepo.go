// Package memory implements the driven ports on top of process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewStore = (*ReviewRepo)(nil)

// ReviewRepo is the in-memory implementation of the ReviewStore port.
// The reviews slice is replaced, never written in place, so a reader holding
// the old slice header keeps a consistent view.
type ReviewRepo struct {
	mu      sync.RWMutex
	reviews []model.Review // Newest first.
}

// NewReviewRepo creates an empty ReviewRepo.
func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{}
}

// List returns a copy of the reviews, newest first.
func (r *ReviewRepo) List(_ context.Context) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.reviews), nil
}

// Add validates review and inserts it at index 0.
func (r *ReviewRepo) Add(_ context.Context, review model.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Review, 0, len(r.reviews)+1)
	next = append(next, review)
	next = append(next, r.reviews...)
	r.reviews = next

	return nil
}

// Count returns the number of reviews held.
func (r *ReviewRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reviews), nil
}
