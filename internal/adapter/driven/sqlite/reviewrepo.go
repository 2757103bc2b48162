package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewStore = (*ReviewRepo)(nil)

// ReviewRepo is the SQLite implementation of the ReviewStore port. Insertion
// order is carried by the autoincrement id, so newest first is id DESC.
type ReviewRepo struct {
	db *DB
}

// NewReviewRepo creates a new ReviewRepo backed by the given DB.
func NewReviewRepo(db *DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// List returns all reviews, most recently inserted first.
func (r *ReviewRepo) List(ctx context.Context) ([]model.Review, error) {
	const query = `
		SELECT author, avatar_url, comment, rating
		FROM reviews
		ORDER BY id DESC
	`

	rows, err := r.db.Conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.Author, &review.AvatarURL, &review.Comment, &review.Rating); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// Add validates and inserts a review. The table CHECK constraints mirror
// model.Review.Validate.
func (r *ReviewRepo) Add(ctx context.Context, review model.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	const query = `
		INSERT INTO reviews (author, avatar_url, comment, rating, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Conn.ExecContext(ctx, query,
		review.Author, review.AvatarURL, review.Comment, review.Rating,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert review by %q: %w", review.Author, err)
	}

	return nil
}

// Count returns the number of stored reviews.
func (r *ReviewRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}
