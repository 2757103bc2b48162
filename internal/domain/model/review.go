package model

import (
	"errors"
	"fmt"
)

// ErrInvalidReview is the reason wrapped by every rejected submission.
var ErrInvalidReview = errors.New("invalid review")

// Rating scale bounds. MinRating is the lowest accepted rating; MaxRating is
// the top of the scale used for summaries and star display, not enforced on
// insert.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single user review of the restaurant. Reviews are values and
// are never modified once accepted into a store.
type Review struct {
	Author    string
	AvatarURL string
	Comment   string
	Rating    int
}

// Validate reports whether the review can be accepted. The returned error
// always wraps ErrInvalidReview.
func (r Review) Validate() error {
	if r.Comment == "" {
		return fmt.Errorf("%w: comment is empty", ErrInvalidReview)
	}
	if r.Rating < MinRating {
		return fmt.Errorf("%w: rating must be positive, got %d", ErrInvalidReview, r.Rating)
	}
	return nil
}
