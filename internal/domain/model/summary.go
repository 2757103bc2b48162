package model

// RatingSummary aggregates the ratings of a set of reviews.
type RatingSummary struct {
	Count   int
	Average float64
	// Distribution[i] holds the number of reviews rated i+1, for ratings
	// MinRating..MaxRating. Ratings above MaxRating count toward the average
	// but are not bucketed.
	Distribution [MaxRating]int
}

// Summarize computes the rating summary of reviews. An empty slice yields a
// zero Average.
func Summarize(reviews []Review) RatingSummary {
	s := RatingSummary{Count: len(reviews)}
	if len(reviews) == 0 {
		return s
	}

	// Accepted ratings have no upper bound, so an int sum could wrap.
	var sum float64
	for _, r := range reviews {
		sum += float64(r.Rating)
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			s.Distribution[r.Rating-1]++
		}
	}
	s.Average = sum / float64(len(reviews))

	return s
}

// AverageRating returns the arithmetic mean rating of reviews, or 0 when
// reviews is empty.
func AverageRating(reviews []Review) float64 {
	return Summarize(reviews).Average
}
